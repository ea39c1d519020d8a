package domain

import "fmt"

// Card represents one catalog entry as returned by the card API.
// The ID is the only field the core interprets; everything else is
// display payload carried through to the UI.
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Supertype string   `json:"supertype,omitempty"`
	Subtypes  []string `json:"subtypes,omitempty"`
	HP        string   `json:"hp,omitempty"`
	Types     []string `json:"types,omitempty"`
	Number    string   `json:"number,omitempty"`
	Rarity    string   `json:"rarity,omitempty"`
	Artist    string   `json:"artist,omitempty"`

	SetID     string `json:"setId,omitempty"`
	SetName   string `json:"setName,omitempty"`
	SetSeries string `json:"setSeries,omitempty"`

	// Image URLs
	ThumbURL string `json:"thumbUrl,omitempty"` // small image for lists
	ImageURL string `json:"imageUrl,omitempty"` // full-size image for detail
}

// Description returns secondary info for list display (e.g., "Rare · Base")
func (c Card) Description() string {
	switch {
	case c.Rarity != "" && c.SetName != "":
		return fmt.Sprintf("%s · %s", c.Rarity, c.SetName)
	case c.SetName != "":
		return c.SetName
	default:
		return c.Rarity
	}
}

// DisplayNumber returns the card's number within its set (e.g., "#4")
func (c Card) DisplayNumber() string {
	if c.Number == "" {
		return ""
	}
	return "#" + c.Number
}

// CardDetail is the full record for a single card. The list endpoint
// returns Card; the per-card endpoint returns this superset.
type CardDetail struct {
	Card

	FlavorText  string            `json:"flavorText,omitempty"`
	EvolvesFrom string            `json:"evolvesFrom,omitempty"`
	Attacks     []Attack          `json:"attacks,omitempty"`
	Weaknesses  []TypeValue       `json:"weaknesses,omitempty"`
	Resistances []TypeValue       `json:"resistances,omitempty"`
	RetreatCost []string          `json:"retreatCost,omitempty"`
	Legalities  map[string]string `json:"legalities,omitempty"`
}

// Attack is one attack line on a card
type Attack struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost,omitempty"`
	ConvertedEnergyCost int      `json:"convertedEnergyCost,omitempty"`
	Damage              string   `json:"damage,omitempty"`
	Text                string   `json:"text,omitempty"`
}

// TypeValue is a type/modifier pair (weakness or resistance)
type TypeValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Page is the result of one catalog fetch: the cards for that page in
// API order plus the backend's total-count hint, used to decide whether
// more pages exist.
type Page struct {
	Cards      []Card
	TotalCount int
}

// Empty reports whether the page carries no cards
func (p Page) Empty() bool {
	return len(p.Cards) == 0
}

// User is the locally persisted profile. FavoriteIDs is stored as an
// ordered list but treated as a set; membership is what matters.
type User struct {
	FavoriteIDs []string `json:"favoriteIds"`
}

// HasFavorite reports whether id is in the favorite set
func (u *User) HasFavorite(id string) bool {
	for _, fid := range u.FavoriteIDs {
		if fid == id {
			return true
		}
	}
	return false
}
