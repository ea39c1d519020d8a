package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"carddex/internal/catalog"
	"carddex/internal/favorites"
)

// initCatalogCmd runs the startup sequence: favorites profile first,
// then catalog bootstrap (cache or page 1). Failures are degraded inside
// the services, so the UI just renders whatever state results.
func initCatalogCmd(cat *catalog.Service, fav *favorites.Service) tea.Cmd {
	return func() tea.Msg {
		fav.Initialize()
		_ = cat.Initialize(context.Background())
		return catalogReadyMsg{}
	}
}

// loadMoreCmd requests the next catalog page
func loadMoreCmd(cat *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		_ = cat.LoadMore(context.Background())
		return pageLoadedMsg{}
	}
}

// fetchDetailCmd fetches the full record for one card
func fetchDetailCmd(cat *catalog.Service, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := cat.CardDetail(context.Background(), id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}
