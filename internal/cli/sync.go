package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCommand creates the sync command: a headless fetch of the
// first N catalog pages into the local cache.
func NewSyncCommand() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch catalog pages into the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := context.Background()
			if err := a.catalog.Initialize(ctx); err != nil {
				return fmt.Errorf("initial fetch failed: %w", err)
			}

			for page := 2; page <= pages && a.catalog.HasMore(); page++ {
				if err := a.catalog.LoadMore(ctx); err != nil {
					return fmt.Errorf("fetch stopped at page %d: %w", page, err)
				}
			}

			fmt.Printf("cached %d cards (%d pages)\n", len(a.catalog.Cards()), a.catalog.CurrentPage())
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 5, "number of pages to fetch")
	return cmd
}
