package cardapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"carddex/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Carddex/1.0"
)

// Client implements domain.CatalogClient against the card catalog API.
// It does no caching; the catalog service owns that.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new card API client. apiKey may be empty; the API
// serves unauthenticated requests at a lower rate limit.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an HTTP request against the API
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrCardNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("api request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// FetchPage returns one page of cards. An empty response body or a body
// without a data field yields an empty Page and a nil error, so "backend
// has nothing" and "backend returned junk" look identical to callers.
func (c *Client) FetchPage(ctx context.Context, page, pageSize int) (domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	body, err := c.doRequest(ctx, http.MethodGet, "/v2/cards", query)
	if err != nil {
		return domain.Page{}, err
	}

	if len(body) == 0 {
		return domain.Page{}, nil
	}

	var resp cardsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("failed to parse cards response", "error", err, "bodyLen", len(body))
		return domain.Page{}, nil
	}
	if resp.Data == nil {
		return domain.Page{}, nil
	}

	total := resp.TotalCount
	if total == 0 {
		total = resp.Count
	}
	if total == 0 {
		total = len(resp.Data)
	}

	result := domain.Page{
		Cards:      mapCards(resp.Data),
		TotalCount: total,
	}
	c.logger.Debug("fetched page", "page", page, "count", len(result.Cards), "total", result.TotalCount)
	return result, nil
}

// FetchCardDetail returns the full record for one card.
func (c *Client) FetchCardDetail(ctx context.Context, id string) (*domain.CardDetail, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v2/cards/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, domain.ErrCardNotFound
	}

	var resp cardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("failed to parse card response", "error", err, "id", id)
		return nil, domain.ErrCardNotFound
	}
	if resp.Data == nil {
		return nil, domain.ErrCardNotFound
	}

	detail := mapCardDetail(*resp.Data)
	return &detail, nil
}
