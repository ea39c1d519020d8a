package cardapi

// cardsResponse is the envelope for GET /v2/cards.
// TotalCount is preferred; some deployments only return Count.
type cardsResponse struct {
	Data       []cardDTO `json:"data"`
	Page       int       `json:"page,omitempty"`
	PageSize   int       `json:"pageSize,omitempty"`
	Count      int       `json:"count,omitempty"`
	TotalCount int       `json:"totalCount,omitempty"`
}

// cardResponse is the envelope for GET /v2/cards/{id}
type cardResponse struct {
	Data *cardDTO `json:"data"`
}

// cardDTO is the wire shape of a card. The list endpoint populates the
// summary fields; the detail endpoint fills everything.
type cardDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Supertype   string   `json:"supertype,omitempty"`
	Subtypes    []string `json:"subtypes,omitempty"`
	HP          string   `json:"hp,omitempty"`
	Types       []string `json:"types,omitempty"`
	Number      string   `json:"number,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
	Artist      string   `json:"artist,omitempty"`
	FlavorText  string   `json:"flavorText,omitempty"`
	EvolvesFrom string   `json:"evolvesFrom,omitempty"`

	Set         *setDTO           `json:"set,omitempty"`
	Images      imagesDTO         `json:"images,omitempty"`
	Attacks     []attackDTO       `json:"attacks,omitempty"`
	Weaknesses  []typeValueDTO    `json:"weaknesses,omitempty"`
	Resistances []typeValueDTO    `json:"resistances,omitempty"`
	RetreatCost []string          `json:"retreatCost,omitempty"`
	Legalities  map[string]string `json:"legalities,omitempty"`
}

type setDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series,omitempty"`
}

type imagesDTO struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

type attackDTO struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost,omitempty"`
	ConvertedEnergyCost int      `json:"convertedEnergyCost,omitempty"`
	Damage              string   `json:"damage,omitempty"`
	Text                string   `json:"text,omitempty"`
}

type typeValueDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
