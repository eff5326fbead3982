package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/telcoin-wiki/sitesearch/internal/api"
	"github.com/telcoin-wiki/sitesearch/internal/config"
	"github.com/telcoin-wiki/sitesearch/internal/engine"
	"github.com/telcoin-wiki/sitesearch/internal/search"
	"github.com/telcoin-wiki/sitesearch/internal/storage"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "wiki-search")

	entry.Info("Starting Telcoin Wiki search service")

	// 1. Config
	cfg := config.Load()

	// 2. Snapshot storage
	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// 3. Search index (memory)
	svc := search.NewService(entry)

	// 4. Engine: initial load + background refresh
	eng := engine.NewEngine(cfg, entry, store, svc)
	if err := eng.Start(context.Background()); err != nil {
		entry.Fatalf("Failed to start engine: %v", err)
	}
	defer eng.Stop()

	// 5. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("Search service ready, %d documents indexed", svc.Size())
	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
}
