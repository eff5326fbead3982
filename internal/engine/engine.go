package engine

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/telcoin-wiki/sitesearch/internal/config"
	"github.com/telcoin-wiki/sitesearch/internal/content"
	"github.com/telcoin-wiki/sitesearch/internal/search"
	"github.com/telcoin-wiki/sitesearch/internal/storage"
)

// Engine wires the content pipeline together: fetch the feeds, snapshot
// them, normalize, and hand the documents to the search service. The
// search service keeps serving its old index until a rebuild swaps in
// the replacement.
type Engine struct {
	Config  *config.Config
	Logger  *logrus.Entry
	Fetcher *content.Fetcher
	Storage storage.ContentStore
	Search  *search.Service

	// State
	mu      sync.RWMutex
	running bool
	cancel  context.CancelFunc

	// Stats
	Stats EngineStats
}

type EngineStats struct {
	Rebuilds     int64
	LastRebuild  time.Time
	LastFetchErr string
	StartTime    time.Time
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, store storage.ContentStore, svc *search.Service) *Engine {
	return &Engine{
		Config:  cfg,
		Logger:  logger,
		Fetcher: content.NewFetcher(cfg.Content.RequestTimeout, logger),
		Storage: store,
		Search:  svc,
		Stats:   EngineStats{StartTime: time.Now()},
	}
}

// Start performs the initial load and launches the background refresh
// loop plus, when enabled, the snapshot watcher.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.running = true
	e.mu.Unlock()

	e.Reload(ctx)

	go e.refreshLoop(ctx)

	if e.Config.Storage.WatchSnapshots {
		go e.watchSnapshots(ctx)
	}
	return nil
}

// Stop cancels the background loops
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running && e.cancel != nil {
		e.cancel()
		e.running = false
	}
}

func (e *Engine) IsRunning() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

// Reload fetches both feeds and rebuilds the index. A feed that cannot
// be fetched falls back to its last snapshot, then to empty; reload
// itself never fails, matching the degrade-to-empty contract.
func (e *Engine) Reload(ctx context.Context) {
	pages := e.loadPages(ctx)
	faqs := e.loadFaqs(ctx)

	docs := content.Normalize(pages, faqs)
	e.Search.Rebuild(docs)

	e.mu.Lock()
	e.Stats.Rebuilds++
	e.Stats.LastRebuild = time.Now()
	e.mu.Unlock()
}

func (e *Engine) loadPages(ctx context.Context) []content.PageRecord {
	pages, err := e.Fetcher.FetchPages(ctx, e.Config.Content.PagesURL)
	if err == nil {
		if saveErr := e.Storage.SavePages(pages); saveErr != nil {
			e.Logger.WithError(saveErr).Warn("Failed to snapshot page feed")
		}
		return pages
	}

	e.noteFetchError(err)
	e.Logger.WithError(err).Warn("Page feed fetch failed, trying snapshot")

	if pages, snapErr := e.Storage.LoadPages(); snapErr == nil {
		return pages
	}
	return nil
}

func (e *Engine) loadFaqs(ctx context.Context) []content.FaqRecord {
	faqs, err := e.Fetcher.FetchFaqs(ctx, e.Config.Content.FaqURL)
	if err == nil {
		if saveErr := e.Storage.SaveFaqs(faqs); saveErr != nil {
			e.Logger.WithError(saveErr).Warn("Failed to snapshot FAQ feed")
		}
		return faqs
	}

	e.noteFetchError(err)
	e.Logger.WithError(err).Warn("FAQ feed fetch failed, trying snapshot")

	if faqs, snapErr := e.Storage.LoadFaqs(); snapErr == nil {
		return faqs
	}
	return nil
}

func (e *Engine) noteFetchError(err error) {
	e.mu.Lock()
	e.Stats.LastFetchErr = err.Error()
	e.mu.Unlock()
}

// StatsSnapshot returns a copy of the counters for the status endpoint
func (e *Engine) StatsSnapshot() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.Stats
}

func (e *Engine) refreshLoop(ctx context.Context) {
	interval := e.Config.Content.RefreshInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Reload(ctx)
		}
	}
}
