package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/indexer"
	"github.com/codeninja55/go-radx/internal/indexstore"
)

// ScanCmd walks a directory tree, decodes every DICOM file it finds, and
// writes the configured fields into a SQLite index.
type ScanCmd struct {
	ConfigPath string `name:"config" type:"path" help:"Path to config.yaml (defaults built in if absent)"`
	Root       string `name:"root" help:"Directory to scan (overrides indexer.root from config)"`
	Workers    int    `name:"workers" help:"Number of concurrent decode workers (0 = GOMAXPROCS)"`
}

func (c *ScanCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return &ConfigError{Err: err}
	}

	root := cfg.Indexer.Root
	if c.Root != "" {
		root = c.Root
	}

	ctx := context.Background()
	store, err := indexstore.Open(ctx, cfg.Indexer.DBPath, cfg.Indexer.Fields)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer store.Close()

	result, err := indexer.Run(ctx, store, root, indexer.Options{
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	logger.Info("scan finished",
		"root", root, "scanned", result.Scanned, "indexed", result.Indexed, "failed", result.Failed)
	return nil
}
