package tui

import "carddex/internal/domain"

// catalogReadyMsg signals that the initial load (cache or page 1) finished
type catalogReadyMsg struct{}

// pageLoadedMsg signals that a load-more call returned (possibly empty)
type pageLoadedMsg struct{}

// detailLoadedMsg carries the result of a card detail fetch
type detailLoadedMsg struct {
	detail *domain.CardDetail
	err    error
}
