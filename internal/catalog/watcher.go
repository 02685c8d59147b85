package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"caseforge/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watch hot-reloads the catalog whenever the file at path changes. The parent
// directory is watched rather than the file itself so atomic rename-replace
// writes from editors are picked up. A reload that fails to parse or validate
// keeps the previous template set active.
//
// Watch returns once the watcher is installed; reloading continues until ctx
// is cancelled.
func (c *Catalog) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("failed to resolve catalog path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	log := logging.Get(logging.CategoryCatalog)
	log.Info("watching catalog %s for changes", abs)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				f, err := Load(abs)
				if err != nil {
					log.Error("reload failed, keeping previous catalog: %v", err)
					continue
				}
				c.Replace(f)
				log.Info("catalog reloaded: %d templates", c.Len())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("catalog watcher: %v", err)
			}
		}
	}()
	return nil
}
