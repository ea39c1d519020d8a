package domain

import "context"

// CatalogClient fetches pages and single-card details from the remote
// card API. Implementations translate transport failures into errors;
// the catalog service downgrades those to "no more pages".
type CatalogClient interface {
	// FetchPage returns one page of cards. An empty or malformed response
	// body yields an empty Page with a nil error; transport and HTTP
	// failures yield an error.
	FetchPage(ctx context.Context, page, pageSize int) (Page, error)

	// FetchCardDetail returns the full record for one card.
	// Returns ErrCardNotFound when the card is absent.
	FetchCardDetail(ctx context.Context, id string) (*CardDetail, error)
}

// ImagePrefetcher warms a local image cache for a set of URLs. Warm must
// not block the caller; failures are logged and otherwise ignored.
type ImagePrefetcher interface {
	Warm(urls []string)
}
