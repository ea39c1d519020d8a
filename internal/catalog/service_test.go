package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carddex/internal/adapter"
	"carddex/internal/domain"
	"carddex/internal/store"
)

// fakeClient serves scripted pages and counts fetches. When blocking is
// enabled, FetchPage signals entered and waits on gate, so tests can
// hold a fetch in flight.
type fakeClient struct {
	pages   map[int]domain.Page
	err     error
	fetches atomic.Int32

	entered chan struct{}
	gate    chan struct{}
}

func (f *fakeClient) FetchPage(ctx context.Context, page, pageSize int) (domain.Page, error) {
	f.fetches.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return domain.Page{}, f.err
	}
	return f.pages[page], nil
}

func (f *fakeClient) FetchCardDetail(ctx context.Context, id string) (*domain.CardDetail, error) {
	for _, p := range f.pages {
		for _, c := range p.Cards {
			if c.ID == id {
				return &domain.CardDetail{Card: c}, nil
			}
		}
	}
	return nil, domain.ErrCardNotFound
}

func cards(ids ...string) []domain.Card {
	out := make([]domain.Card, len(ids))
	for i, id := range ids {
		out[i] = domain.Card{ID: id, Name: id}
	}
	return out
}

func ids(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func newTestService(t *testing.T, client *fakeClient, pageSize int) (*Service, *store.CardStore) {
	t.Helper()
	st, err := store.New("", adapter.NullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(client, st, nil, pageSize, adapter.NullLogger()), st
}

func TestService_Initialize(t *testing.T) {
	t.Run("fetches page 1 and persists on cold start", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 4},
		}}
		svc, st := newTestService(t, client, 2)

		require.NoError(t, svc.Initialize(context.Background()))

		assert.Equal(t, []string{"a", "b"}, ids(svc.Cards()))
		assert.Equal(t, 1, svc.CurrentPage())
		assert.True(t, svc.HasMore())
		assert.Equal(t, int32(1), client.fetches.Load())

		persisted, ok := st.GetCards()
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, ids(persisted))
	})

	t.Run("uses cached cards without fetching", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("fresh"), TotalCount: 1},
		}}
		svc, st := newTestService(t, client, 2)
		require.NoError(t, st.SaveCards(cards("x", "y", "z")))

		require.NoError(t, svc.Initialize(context.Background()))

		assert.Equal(t, []string{"x", "y", "z"}, ids(svc.Cards()))
		assert.Equal(t, int32(0), client.fetches.Load())
		// Cursor is not persisted, so the cache does not move it
		assert.Equal(t, 1, svc.CurrentPage())
		assert.True(t, svc.HasMore())
	})

	t.Run("stored empty list triggers a fetch", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a"), TotalCount: 1},
		}}
		svc, st := newTestService(t, client, 2)
		require.NoError(t, st.SaveCards([]domain.Card{}))

		require.NoError(t, svc.Initialize(context.Background()))

		assert.Equal(t, []string{"a"}, ids(svc.Cards()))
		assert.Equal(t, int32(1), client.fetches.Load())
	})

	t.Run("fetch failure degrades to an empty exhausted catalog", func(t *testing.T) {
		client := &fakeClient{err: errors.New("boom")}
		svc, _ := newTestService(t, client, 2)

		err := svc.Initialize(context.Background())

		assert.Error(t, err)
		assert.Empty(t, svc.Cards())
		assert.False(t, svc.HasMore())
		assert.False(t, svc.Loading())
	})

	t.Run("exhaustion when first page covers the total", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 2},
		}}
		svc, _ := newTestService(t, client, 2)

		require.NoError(t, svc.Initialize(context.Background()))

		assert.False(t, svc.HasMore())
	})
}

func TestService_LoadMore(t *testing.T) {
	t.Run("appends pages in call order", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 6},
			2: {Cards: cards("c", "d"), TotalCount: 6},
			3: {Cards: cards("e", "f"), TotalCount: 6},
		}}
		svc, st := newTestService(t, client, 2)
		require.NoError(t, svc.Initialize(context.Background()))

		require.NoError(t, svc.LoadMore(context.Background()))
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(svc.Cards()))
		assert.Equal(t, 2, svc.CurrentPage())
		assert.True(t, svc.HasMore())

		require.NoError(t, svc.LoadMore(context.Background()))
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ids(svc.Cards()))
		assert.Equal(t, 3, svc.CurrentPage())
		assert.False(t, svc.HasMore())

		// The flattened list is re-persisted after each append
		persisted, ok := st.GetCards()
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ids(persisted))
	})

	t.Run("total count ends pagination", func(t *testing.T) {
		// Scenario: 4 cards total, page size 2
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 4},
			2: {Cards: cards("c", "d"), TotalCount: 4},
			3: {},
		}}
		svc, _ := newTestService(t, client, 2)
		require.NoError(t, svc.Initialize(context.Background()))
		assert.True(t, svc.HasMore())

		require.NoError(t, svc.LoadMore(context.Background()))
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(svc.Cards()))
		assert.Equal(t, 2, svc.CurrentPage())
		assert.False(t, svc.HasMore())

		// Further calls are no-ops: no fetch, no mutation
		before := client.fetches.Load()
		require.NoError(t, svc.LoadMore(context.Background()))
		assert.Equal(t, before, client.fetches.Load())
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(svc.Cards()))
		assert.Equal(t, 2, svc.CurrentPage())
	})

	t.Run("empty page stops without mutating state", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 100},
			2: {},
		}}
		svc, _ := newTestService(t, client, 2)
		require.NoError(t, svc.Initialize(context.Background()))

		require.NoError(t, svc.LoadMore(context.Background()))

		assert.False(t, svc.HasMore())
		assert.Equal(t, []string{"a", "b"}, ids(svc.Cards()))
		assert.Equal(t, 1, svc.CurrentPage())
	})

	t.Run("fetch failure stops without mutating state", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 100},
		}}
		svc, _ := newTestService(t, client, 2)
		require.NoError(t, svc.Initialize(context.Background()))

		client.err = errors.New("boom")
		err := svc.LoadMore(context.Background())

		assert.Error(t, err)
		assert.False(t, svc.HasMore())
		assert.Equal(t, []string{"a", "b"}, ids(svc.Cards()))
		assert.Equal(t, 1, svc.CurrentPage())
		assert.False(t, svc.Loading())
	})

	t.Run("single flight while a fetch is outstanding", func(t *testing.T) {
		client := &fakeClient{pages: map[int]domain.Page{
			1: {Cards: cards("a", "b"), TotalCount: 6},
			2: {Cards: cards("c", "d"), TotalCount: 6},
		}}
		svc, _ := newTestService(t, client, 2)
		require.NoError(t, svc.Initialize(context.Background()))

		client.entered = make(chan struct{}, 1)
		client.gate = make(chan struct{})

		done := make(chan error, 1)
		go func() { done <- svc.LoadMore(context.Background()) }()
		<-client.entered // first call is inside the fetch

		assert.True(t, svc.Loading())

		// Second call observes loading and is a no-op
		require.NoError(t, svc.LoadMore(context.Background()))
		assert.Equal(t, int32(2), client.fetches.Load()) // init + one in flight

		close(client.gate)
		require.NoError(t, <-done)

		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(svc.Cards()))
		assert.Equal(t, 2, svc.CurrentPage())
		assert.False(t, svc.Loading())
	})
}

func TestService_Accessors(t *testing.T) {
	client := &fakeClient{pages: map[int]domain.Page{
		1: {Cards: cards("a", "b"), TotalCount: 2},
	}}
	svc, _ := newTestService(t, client, 2)
	require.NoError(t, svc.Initialize(context.Background()))

	t.Run("card lookup by id", func(t *testing.T) {
		card, ok := svc.Card("b")
		require.True(t, ok)
		assert.Equal(t, "b", card.ID)

		_, ok = svc.Card("missing")
		assert.False(t, ok)
	})

	t.Run("cards returns a defensive copy", func(t *testing.T) {
		snapshot := svc.Cards()
		snapshot[0].ID = "mutated"

		fresh := svc.Cards()
		assert.Equal(t, "a", fresh[0].ID)
	})

	t.Run("card detail comes from the client", func(t *testing.T) {
		detail, err := svc.CardDetail(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", detail.ID)

		_, err = svc.CardDetail(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}
