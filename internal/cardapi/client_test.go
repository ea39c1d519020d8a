package cardapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carddex/internal/adapter"
	"carddex/internal/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "", adapter.NullLogger()), srv
}

func TestClient_FetchPage(t *testing.T) {
	t.Run("fetches and maps a page", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/cards", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
			fmt.Fprint(w, `{
				"data": [
					{"id": "base1-4", "name": "Charizard", "rarity": "Rare Holo",
					 "set": {"id": "base1", "name": "Base", "series": "Base"},
					 "images": {"small": "http://img/small.png", "large": "http://img/large.png"}},
					{"id": "base1-58", "name": "Pikachu"}
				],
				"page": 2, "pageSize": 10, "count": 2, "totalCount": 102
			}`)
		})
		defer srv.Close()

		page, err := client.FetchPage(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 102, page.TotalCount)
		require.Len(t, page.Cards, 2)

		first := page.Cards[0]
		assert.Equal(t, "base1-4", first.ID)
		assert.Equal(t, "Charizard", first.Name)
		assert.Equal(t, "Rare Holo", first.Rarity)
		assert.Equal(t, "Base", first.SetName)
		assert.Equal(t, "http://img/small.png", first.ThumbURL)
		assert.Equal(t, "http://img/large.png", first.ImageURL)
	})

	t.Run("falls back to count then data length", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": [{"id": "a"}], "count": 7}`)
		})
		defer srv.Close()

		page, err := client.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 7, page.TotalCount)

		client2, srv2 := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": [{"id": "a"}, {"id": "b"}]}`)
		})
		defer srv2.Close()

		page, err = client2.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
	})

	t.Run("empty body yields empty page", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		defer srv.Close()

		page, err := client.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, page.Empty())
		assert.Equal(t, 0, page.TotalCount)
	})

	t.Run("missing data field yields empty page", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"page": 1}`)
		})
		defer srv.Close()

		page, err := client.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, page.Empty())
	})

	t.Run("malformed body yields empty page", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{{{not json`)
		})
		defer srv.Close()

		page, err := client.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, page.Empty())
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		_, err := client.FetchPage(context.Background(), 1, 10)
		assert.Error(t, err)
	})

	t.Run("unreachable server is ErrServerOffline", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // deliberately dead

		client := NewClient(srv.URL, "", adapter.NullLogger())
		_, err := client.FetchPage(context.Background(), 1, 10)
		assert.ErrorIs(t, err, domain.ErrServerOffline)
	})

	t.Run("sends api key header when configured", func(t *testing.T) {
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-Api-Key")
			fmt.Fprint(w, `{"data": []}`)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", adapter.NullLogger())
		_, err := client.FetchPage(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "secret", gotKey)
	})
}

func TestClient_FetchCardDetail(t *testing.T) {
	t.Run("fetches and maps the detail", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/cards/base1-4", r.URL.Path)
			fmt.Fprint(w, `{"data": {
				"id": "base1-4", "name": "Charizard", "hp": "120",
				"types": ["Fire"], "evolvesFrom": "Charmeleon",
				"attacks": [{"name": "Fire Spin", "cost": ["Fire","Fire","Fire","Fire"],
				             "convertedEnergyCost": 4, "damage": "100",
				             "text": "Discard 2 Energy cards."}],
				"weaknesses": [{"type": "Water", "value": "×2"}],
				"retreatCost": ["Colorless","Colorless","Colorless"]
			}}`)
		})
		defer srv.Close()

		detail, err := client.FetchCardDetail(context.Background(), "base1-4")
		require.NoError(t, err)
		assert.Equal(t, "Charizard", detail.Name)
		assert.Equal(t, "Charmeleon", detail.EvolvesFrom)
		require.Len(t, detail.Attacks, 1)
		assert.Equal(t, "Fire Spin", detail.Attacks[0].Name)
		assert.Equal(t, 4, detail.Attacks[0].ConvertedEnergyCost)
		require.Len(t, detail.Weaknesses, 1)
		assert.Equal(t, "Water", detail.Weaknesses[0].Type)
	})

	t.Run("missing data is ErrCardNotFound", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		})
		defer srv.Close()

		_, err := client.FetchCardDetail(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})

	t.Run("404 is ErrCardNotFound", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := client.FetchCardDetail(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})

	t.Run("malformed body is ErrCardNotFound", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json at all`)
		})
		defer srv.Close()

		_, err := client.FetchCardDetail(context.Background(), "base1-4")
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}
