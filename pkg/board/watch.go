package board

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/byxorna/stackit/pkg/db"
	"github.com/fsnotify/fsnotify"
)

// Watch follows the seed file and signals on the returned channel each time
// it is written or replaced. The directory is watched rather than the file so
// editors that save by rename are still seen. The channel closes when ctx is
// done.
func (x *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	if x.SeedFile == "" {
		return nil, db.ErrNotWatchable
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(x.SeedFile)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(x.SeedFile) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				slog.Debug("seed file changed", "file", event.Name, "op", event.Op.String())
				select {
				case changes <- struct{}{}:
				default:
					// a change is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("error watching seed file", "file", x.SeedFile, "err", err)
			}
		}
	}()
	return changes, nil
}
