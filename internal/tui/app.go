package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carddex/internal/catalog"
	"carddex/internal/domain"
	"carddex/internal/favorites"
	"carddex/internal/search"
)

// tab identifies the active top-level list
type tab int

const (
	tabBrowse tab = iota
	tabFavorites
)

// view identifies the active screen
type view int

const (
	viewList view = iota
	viewDetail
)

// Model is the root bubbletea model: a tabbed card list with a detail
// screen. All catalog and favorites state lives in the services; the
// model only tracks presentation state.
type Model struct {
	catalog   *catalog.Service
	favorites *favorites.Service
	keys      KeyMap

	tab    tab
	view   view
	cursor int
	width  int
	height int

	ready     bool
	fetching  bool
	spinner   spinner.Model
	filter    textinput.Model
	filtering bool

	detail    *domain.CardDetail
	detailErr error
}

// NewModel creates the root TUI model
func NewModel(cat *catalog.Service, fav *favorites.Service) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	filter := textinput.New()
	filter.Placeholder = "filter by name"
	filter.Prompt = "/"
	filter.CharLimit = 64

	return Model{
		catalog:   cat,
		favorites: fav,
		keys:      DefaultKeyMap(),
		spinner:   sp,
		filter:    filter,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, initCatalogCmd(m.catalog, m.favorites))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogReadyMsg:
		m.ready = true
		return m, nil

	case pageLoadedMsg:
		m.fetching = false
		return m, nil

	case detailLoadedMsg:
		m.fetching = false
		m.detail = msg.detail
		m.detailErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter input captures everything except escape/enter
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.view == viewDetail {
			m.view = viewList
			m.detail = nil
			m.detailErr = nil
			return m, nil
		}
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
		}
		return m, nil
	}

	if m.view == viewDetail {
		if key.Matches(msg, m.keys.Favorite) && m.detail != nil {
			m.favorites.ToggleFavorite(m.detail.ID)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		cards := m.visibleCards()
		if m.cursor < len(cards)-1 {
			m.cursor++
			return m, nil
		}
		// At the end of the browse list: try to pull in the next page.
		// The service no-ops if a load is in flight or pages ran out.
		if m.tab == tabBrowse && m.catalog.HasMore() && !m.catalog.Loading() {
			m.fetching = true
			return m, loadMoreCmd(m.catalog)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		if m.tab == tabBrowse {
			m.tab = tabFavorites
		} else {
			m.tab = tabBrowse
		}
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		if card, ok := m.selectedCard(); ok {
			m.favorites.ToggleFavorite(card.ID)
			// Keep the cursor in range when the favorites tab shrinks
			if n := len(m.visibleCards()); m.cursor >= n && m.cursor > 0 {
				m.cursor = n - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if card, ok := m.selectedCard(); ok {
			m.view = viewDetail
			m.fetching = true
			return m, fetchDetailCmd(m.catalog, card.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// visibleCards returns the card list for the active tab with the name
// filter applied
func (m Model) visibleCards() []domain.Card {
	cards := m.catalog.Cards()
	if m.tab == tabFavorites {
		favs := make([]domain.Card, 0, len(cards))
		for _, c := range cards {
			if m.favorites.IsFavorite(c.ID) {
				favs = append(favs, c)
			}
		}
		cards = favs
	}
	return search.Cards(m.filter.Value(), cards)
}

func (m Model) selectedCard() (domain.Card, bool) {
	cards := m.visibleCards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return domain.Card{}, false
	}
	return cards[m.cursor], true
}

func (m Model) View() string {
	if !m.ready {
		return fmt.Sprintf("\n %s loading catalog...\n", m.spinner.View())
	}
	if m.view == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(" " + m.filter.View() + "\n\n")
	}

	cards := m.visibleCards()
	if len(cards) == 0 {
		if m.tab == tabFavorites {
			b.WriteString(dimStyle.Render("  no favorites yet — press f on a card to add one"))
		} else {
			b.WriteString(dimStyle.Render("  no cards loaded"))
		}
		b.WriteString("\n")
	} else {
		rows := m.listHeight()
		offset := 0
		if m.cursor >= rows {
			offset = m.cursor - rows + 1
		}

		end := offset + rows
		if end > len(cards) {
			end = len(cards)
		}
		for i := offset; i < end; i++ {
			b.WriteString(m.renderRow(cards[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(len(cards)))
	return b.String()
}

func (m Model) tabBar() string {
	browse := inactiveTabStyle.Render("Browse")
	favs := inactiveTabStyle.Render("Favorites")
	if m.tab == tabBrowse {
		browse = activeTabStyle.Render("Browse")
	} else {
		favs = activeTabStyle.Render("Favorites")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, browse, favs)
}

func (m Model) renderRow(card domain.Card, selected bool) string {
	marker := "  "
	if m.favorites.IsFavorite(card.ID) {
		marker = accentStyle.Render("★ ")
	}

	name := card.Name
	desc := card.Description()
	if desc != "" {
		desc = "  " + subtitleStyle.Render(desc)
	}

	if selected {
		return "  " + marker + selectedRowStyle.Render("▸ "+name) + desc
	}
	return "  " + marker + "  " + name + desc
}

func (m Model) statusLine(visible int) string {
	var parts []string

	if m.fetching {
		parts = append(parts, m.spinner.View()+" loading")
	} else if m.tab == tabBrowse && !m.catalog.HasMore() {
		parts = append(parts, dimStyle.Render("end of catalog"))
	}

	parts = append(parts, dimStyle.Render(fmt.Sprintf("%d cards · page %d", visible, m.catalog.CurrentPage())))
	parts = append(parts, dimStyle.Render("tab: switch · f: favorite · /: filter · enter: detail · q: quit"))
	return " " + strings.Join(parts, "  ")
}

func (m Model) detailView() string {
	var b strings.Builder

	if m.fetching {
		return fmt.Sprintf("\n %s fetching card...\n", m.spinner.View())
	}

	if m.detailErr != nil || m.detail == nil {
		b.WriteString("\n " + errorStyle.Render("card detail unavailable") + "\n\n")
		b.WriteString(dimStyle.Render(" esc: back"))
		return b.String()
	}

	d := m.detail
	var body strings.Builder
	body.WriteString(titleStyle.Render(d.Name))
	if d.DisplayNumber() != "" {
		body.WriteString("  " + dimStyle.Render(d.DisplayNumber()))
	}
	body.WriteString("\n")
	if d.Description() != "" {
		body.WriteString(subtitleStyle.Render(d.Description()) + "\n")
	}
	if d.HP != "" {
		body.WriteString(fmt.Sprintf("HP %s", d.HP))
		if len(d.Types) > 0 {
			body.WriteString("  " + strings.Join(d.Types, "/"))
		}
		body.WriteString("\n")
	}
	if d.EvolvesFrom != "" {
		body.WriteString(dimStyle.Render("evolves from "+d.EvolvesFrom) + "\n")
	}

	for _, a := range d.Attacks {
		body.WriteString("\n" + accentStyle.Render(a.Name))
		if a.Damage != "" {
			body.WriteString("  " + a.Damage)
		}
		if a.Text != "" {
			body.WriteString("\n" + subtitleStyle.Render(a.Text))
		}
		body.WriteString("\n")
	}

	if len(d.Weaknesses) > 0 {
		var ws []string
		for _, w := range d.Weaknesses {
			ws = append(ws, w.Type+w.Value)
		}
		body.WriteString("\n" + dimStyle.Render("weak: "+strings.Join(ws, " ")))
	}
	if d.FlavorText != "" {
		body.WriteString("\n\n" + dimStyle.Render(d.FlavorText))
	}
	if d.Artist != "" {
		body.WriteString("\n" + dimStyle.Render("illus. "+d.Artist))
	}

	b.WriteString("\n" + detailBoxStyle.Render(body.String()) + "\n\n")

	fav := "f: add favorite"
	if m.favorites.IsFavorite(d.ID) {
		fav = "f: remove favorite"
	}
	b.WriteString(dimStyle.Render(" esc: back · " + fav))
	return b.String()
}

// listHeight returns how many card rows fit on screen
func (m Model) listHeight() int {
	// tab bar, filter line, status line, padding
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}
