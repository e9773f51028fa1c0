package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/indexstore"
	"github.com/codeninja55/go-radx/internal/server"
)

// ServeCmd hosts the QIDO-RS/WADO-RS query service over a previously
// populated index.
type ServeCmd struct {
	ConfigPath string `name:"config" type:"path" help:"Path to config.yaml (defaults built in if absent)"`
	Addr       string `name:"addr" help:"Listen address (overrides server.addr from config)"`
}

func (c *ServeCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return &ConfigError{Err: err}
	}

	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	store, err := indexstore.Open(context.Background(), cfg.Indexer.DBPath, cfg.Indexer.Fields)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer store.Close()

	handler := server.New(store, logger)
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
