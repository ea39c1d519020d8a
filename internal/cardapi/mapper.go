package cardapi

import "carddex/internal/domain"

// mapCards converts API card DTOs to domain cards
func mapCards(dtos []cardDTO) []domain.Card {
	cards := make([]domain.Card, 0, len(dtos))
	for _, d := range dtos {
		cards = append(cards, mapCard(d))
	}
	return cards
}

// mapCard converts a single card DTO to a domain card
func mapCard(d cardDTO) domain.Card {
	card := domain.Card{
		ID:        d.ID,
		Name:      d.Name,
		Supertype: d.Supertype,
		Subtypes:  d.Subtypes,
		HP:        d.HP,
		Types:     d.Types,
		Number:    d.Number,
		Rarity:    d.Rarity,
		Artist:    d.Artist,
		ThumbURL:  d.Images.Small,
		ImageURL:  d.Images.Large,
	}

	if d.Set != nil {
		card.SetID = d.Set.ID
		card.SetName = d.Set.Name
		card.SetSeries = d.Set.Series
	}

	return card
}

// mapCardDetail converts a full card DTO to a domain card detail
func mapCardDetail(d cardDTO) domain.CardDetail {
	detail := domain.CardDetail{
		Card:        mapCard(d),
		FlavorText:  d.FlavorText,
		EvolvesFrom: d.EvolvesFrom,
		RetreatCost: d.RetreatCost,
		Legalities:  d.Legalities,
	}

	for _, a := range d.Attacks {
		detail.Attacks = append(detail.Attacks, domain.Attack{
			Name:                a.Name,
			Cost:                a.Cost,
			ConvertedEnergyCost: a.ConvertedEnergyCost,
			Damage:              a.Damage,
			Text:                a.Text,
		})
	}
	for _, w := range d.Weaknesses {
		detail.Weaknesses = append(detail.Weaknesses, domain.TypeValue{Type: w.Type, Value: w.Value})
	}
	for _, r := range d.Resistances {
		detail.Resistances = append(detail.Resistances, domain.TypeValue{Type: r.Type, Value: r.Value})
	}

	return detail
}
