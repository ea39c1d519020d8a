package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"carddex/internal/adapter"
	"carddex/internal/cardapi"
	"carddex/internal/catalog"
	"carddex/internal/domain"
	"carddex/internal/favorites"
	"carddex/internal/prefetch"
	"carddex/internal/store"
	"carddex/internal/tui"
)

// NewRootCommand creates the root command. Running it with no
// subcommand launches the browser TUI.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carddex",
		Short:   "Carddex - a terminal card catalog browser",
		Long:    "Carddex browses a remote card catalog page by page, caches it locally, and tracks your favorite cards.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	cmd.AddCommand(NewSyncCommand())
	cmd.AddCommand(NewFavoritesCommand())
	cmd.AddCommand(NewResetCommand())

	return cmd
}

// app bundles the wired services for a command invocation
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	store     *store.CardStore
	catalog   *catalog.Service
	favorites *favorites.Service
}

// buildApp wires config, logging, storage, and the services
func buildApp() (*app, error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to a null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	st, err := store.New(cfg.Cache.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	client := cardapi.NewClient(cfg.API.BaseURL, cfg.API.Key, logger)

	var warmer domain.ImagePrefetcher
	if cfg.Cache.Images && cfg.Cache.Dir != "" {
		warmer = prefetch.NewWarmer(cfg.ImageCachePath(), logger)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		catalog:   catalog.NewService(client, st, warmer, cfg.API.PageSize, logger),
		favorites: favorites.NewService(st, logger),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close store", "error", err)
	}
}

// runTUI starts the TUI application
func runTUI() error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.logger.Info("starting carddex")

	model := tui.NewModel(a.catalog, a.favorites)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}

	a.logger.Info("shutting down")
	return nil
}
