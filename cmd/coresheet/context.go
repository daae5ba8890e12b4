package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"coresheet/internal/config"
	"coresheet/internal/logging"
	"coresheet/internal/sheet"
	"coresheet/internal/sheetstore"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// sheetEnv bundles everything a worksheet command needs.
type sheetEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	model   *sheet.Model
	adapter *sheetstore.Adapter
}

// withSheet opens the store, loads the record (falling back to the all-empty
// default), wires persistence into the model, and runs fn. The store is
// closed when fn returns.
func (c *commandContext) withSheet(cmd *cobra.Command, fn func(ctx context.Context, env sheetEnv) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	store, err := sheetstore.OpenSQLite(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	adapter := sheetstore.NewAdapter(store, logger)
	record, _ := adapter.Load(ctx)
	model := sheet.NewModel(record, func(r sheet.Record) {
		adapter.Save(ctx, r)
	})

	return fn(ctx, sheetEnv{cfg: cfg, logger: logger, model: model, adapter: adapter})
}
