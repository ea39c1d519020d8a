package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"carddex/internal/adapter"
)

// NewResetCommand creates the reset command: wipes the cached catalog,
// the user profile, and any prefetched images.
func NewResetCommand() *cobra.Command {
	var keepFavorites bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the local cache and user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			if keepFavorites {
				a.store.InvalidateCards()
				a.close()
				fmt.Println("catalog cache cleared")
				return nil
			}

			// Full reset: close the store first so the db file can go
			a.close()
			if err := adapter.ClearCache(a.cfg); err != nil {
				return err
			}
			fmt.Println("cache and user profile cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepFavorites, "keep-favorites", false, "clear only the catalog cache")
	return cmd
}
