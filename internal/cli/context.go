package cli

import (
	"context"
	"fmt"

	"github.com/renato0307/shade/internal/config"
	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/share"
	"github.com/renato0307/shade/internal/store"
	"github.com/renato0307/shade/internal/theme"
	"github.com/renato0307/shade/internal/types"
)

// AppContext holds the dependencies shared by every command.
type AppContext struct {
	Config *config.Config
	DB     *store.SQLiteStore
	Theme  *theme.Store
	// Link always holds the share token of the current theme.
	Link *share.Link
}

// NewAppContext opens the persisted theme described by cfg.
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	db, err := store.New(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme store: %w", err)
	}

	var presets []types.Preset
	if cfg.Presets.File != "" {
		presets, err = theme.LoadPresetFile(cfg.Presets.File)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to load presets: %w", err)
		}
	}

	format, err := css.ParseFormat(cfg.CSS.Format)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	link := share.NewLink(cfg.Share.File, logging.Get())
	opts := []theme.Option{
		theme.WithPersister(theme.NewKVPersister(db)),
		theme.WithLinkUpdater(link.Update),
		theme.WithPresets(presets),
		theme.WithLogger(logging.Get()),
	}
	if cfg.CSS.Output != "" {
		sink := css.NewVariableSink(css.NewFileTarget(cfg.CSS.Output), format, logging.Get())
		opts = append(opts, theme.WithSink(sink))
	}

	return &AppContext{
		Config: cfg,
		DB:     db,
		Theme:  theme.NewStore(ctx, opts...),
		Link:   link,
	}, nil
}

// Close releases the theme store.
func (a *AppContext) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
