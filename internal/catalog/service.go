package catalog

import (
	"context"
	"log/slog"
	"sync"

	"carddex/internal/domain"
)

// DefaultPageSize is the number of cards requested per page
const DefaultPageSize = 10

// Service owns the loaded card list and its page cursor. It orchestrates
// load-more against the API client, persists the flattened list on every
// load, and bootstraps from the local store on startup.
//
// The loading flag is checked and set under the mutex before any network
// or storage call, so at most one load is ever in flight; a second call
// observes loading and returns immediately as a no-op.
type Service struct {
	client     domain.CatalogClient
	store      domain.Store
	prefetcher domain.ImagePrefetcher
	logger     *slog.Logger
	pageSize   int

	mu          sync.Mutex
	cards       []domain.Card
	currentPage int
	hasMore     bool
	loading     bool
}

// NewService creates a new catalog service. prefetcher may be nil;
// pageSize <= 0 falls back to DefaultPageSize.
func NewService(client domain.CatalogClient, store domain.Store, prefetcher domain.ImagePrefetcher, pageSize int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		client:      client,
		store:       store,
		prefetcher:  prefetcher,
		logger:      logger,
		pageSize:    pageSize,
		currentPage: 1,
		hasMore:     true,
	}
}

// Initialize loads the catalog once at startup. A non-empty cached list
// becomes the in-memory list without any network fetch; the cursor stays
// at 1 since the cache does not record which pages it covers, so the
// next LoadMore requests page 2 regardless. An empty or absent cache
// triggers a fetch of page 1, which is then persisted.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()
	defer s.clearLoading()

	if cached, ok := s.store.GetCards(); ok && len(cached) > 0 {
		s.mu.Lock()
		s.cards = cached
		s.mu.Unlock()
		s.logger.Debug("catalog loaded from cache", "count", len(cached))
		s.warmImages(cached)
		return nil
	}

	page, err := s.client.FetchPage(ctx, 1, s.pageSize)
	if err != nil {
		s.logger.Error("initial catalog fetch failed", "error", err)
		page = domain.Page{}
	}

	s.mu.Lock()
	s.cards = page.Cards
	s.hasMore = s.pageSize < page.TotalCount
	s.mu.Unlock()

	if saveErr := s.store.SaveCards(page.Cards); saveErr != nil {
		s.logger.Error("failed to persist catalog", "error", saveErr)
	}
	s.logger.Debug("catalog loaded from network", "count", len(page.Cards), "total", page.TotalCount)
	s.warmImages(page.Cards)
	return err
}

// LoadMore fetches the next page and appends it. It is a no-op while a
// load is in flight or after the catalog is exhausted. An empty page or
// a fetch failure marks the catalog exhausted without touching the
// loaded cards or the cursor; no retry is attempted.
func (s *Service) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	next := s.currentPage + 1
	s.mu.Unlock()
	defer s.clearLoading()

	s.logger.Debug("loading page", "page", next)

	page, err := s.client.FetchPage(ctx, next, s.pageSize)
	if err != nil {
		s.logger.Error("failed to load page", "error", err, "page", next)
		s.mu.Lock()
		s.hasMore = false
		s.mu.Unlock()
		return err
	}

	if page.Empty() {
		s.mu.Lock()
		s.hasMore = false
		s.mu.Unlock()
		s.logger.Debug("catalog exhausted", "page", next)
		return nil
	}

	s.mu.Lock()
	s.cards = append(s.cards, page.Cards...)
	s.currentPage = next
	s.hasMore = next*s.pageSize < page.TotalCount
	snapshot := make([]domain.Card, len(s.cards))
	copy(snapshot, s.cards)
	s.mu.Unlock()

	if saveErr := s.store.SaveCards(snapshot); saveErr != nil {
		s.logger.Error("failed to persist catalog", "error", saveErr)
	}
	s.logger.Debug("appended page", "page", next, "count", len(page.Cards), "loaded", len(snapshot))
	s.warmImages(page.Cards)
	return nil
}

// CardDetail fetches the full record for one card from the API
func (s *Service) CardDetail(ctx context.Context, id string) (*domain.CardDetail, error) {
	detail, err := s.client.FetchCardDetail(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch card detail", "error", err, "id", id)
		return nil, err
	}
	return detail, nil
}

// Cards returns a snapshot of the loaded card list
func (s *Service) Cards() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := make([]domain.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// Card returns the loaded card with the given id, if present
func (s *Service) Card(id string) (domain.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Card{}, false
}

// CurrentPage returns the page cursor (1 until the first successful LoadMore)
func (s *Service) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// HasMore reports whether further pages may exist
func (s *Service) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Loading reports whether a load is in flight
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) clearLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Service) warmImages(cards []domain.Card) {
	if s.prefetcher == nil {
		return
	}
	urls := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.ThumbURL != "" {
			urls = append(urls, c.ThumbURL)
		}
	}
	s.prefetcher.Warm(urls)
}
