package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"carddex/internal/domain"
)

// NewFavoritesCommand creates the favorites command: prints the
// favorite cards found in the local cache.
func NewFavoritesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite cards from the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.favorites.Initialize()

			ids := a.favorites.FavoriteIDs()
			if len(ids) == 0 {
				fmt.Println("no favorites yet")
				return nil
			}

			cached, _ := a.store.GetCards()
			for _, id := range ids {
				if card, ok := findCard(cached, id); ok {
					fmt.Printf("%s\t%s\t%s\n", card.ID, card.Name, card.Description())
				} else {
					// Favorited but outside the cached catalog window
					fmt.Printf("%s\t(not cached)\n", id)
				}
			}
			return nil
		},
	}
}

func findCard(cards []domain.Card, id string) (domain.Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Card{}, false
}
