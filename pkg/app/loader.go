package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/byxorna/stackit/pkg/board"
	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/db"
)

// New opens the board named by cfg and builds the application over it. When
// cfg asks for it, the board follows edits to its seed file until ctx is done.
func New(ctx context.Context, cfg *config.Config, useAltScreen bool) (*Application, error) {
	store, err := board.New(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("unable to open board: %w", err)
	}
	slog.Info("board loaded", "path", store.StoragePath(), "questions", store.Stats().Questions)

	m := NewApplication(cfg, store)
	m.UseAltScreen = useAltScreen

	if cfg.WatchSeed {
		err := m.Watch(ctx)
		switch {
		case errors.Is(err, db.ErrNotWatchable):
			slog.Debug("board has no seed file to watch")
		case err != nil:
			return nil, fmt.Errorf("unable to watch board: %w", err)
		}
	}
	return m, nil
}
