package engine

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/telcoin-wiki/sitesearch/internal/content"
	"github.com/telcoin-wiki/sitesearch/internal/storage"
)

// watchSnapshots rebuilds the index whenever a snapshot file in the data
// directory is rewritten, so hand-edited or externally synced content
// shows up in search without waiting for the next feed refresh.
func (e *Engine) watchSnapshots(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		e.Logger.WithError(err).Warn("Snapshot watcher unavailable")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(e.Storage.Dir()); err != nil {
		e.Logger.WithError(err).Warn("Failed to watch snapshot directory")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if name != storage.PagesFile && name != storage.FaqFile {
				continue
			}
			e.Logger.Infof("Snapshot %s changed, rebuilding index", name)
			e.rebuildFromSnapshots()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.Logger.WithError(err).Warn("Snapshot watcher error")
		}
	}
}

// rebuildFromSnapshots rebuilds the index from the on-disk snapshots
// only, without touching the network.
func (e *Engine) rebuildFromSnapshots() {
	pages, err := e.Storage.LoadPages()
	if err != nil {
		pages = nil
	}
	faqs, err := e.Storage.LoadFaqs()
	if err != nil {
		faqs = nil
	}
	e.Search.Rebuild(content.Normalize(pages, faqs))

	e.mu.Lock()
	e.Stats.Rebuilds++
	e.mu.Unlock()
}
