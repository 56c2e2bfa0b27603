package hearth

import (
	"context"
	"fmt"

	"github.com/jlrickert/cli-toolkit/mylog"
)

// ConfigOptions configures behavior for App.Config.
type ConfigOptions struct {
	// Template prints a pristine default document instead of the effective
	// configuration.
	Template bool
}

// Config renders the configuration as YAML. Unless a template was asked for,
// the effective configuration is loaded first, which creates the file on a
// first run.
func (a *App) Config(ctx context.Context, opts ConfigOptions) (string, error) {
	if opts.Template {
		data, err := DefaultConfig().ToYAML()
		return string(data), err
	}

	cfg, err := a.ConfigService.Config(ctx, true)
	if err != nil {
		return "", err
	}
	data, err := cfg.ToYAML()
	if err != nil {
		return "", fmt.Errorf("unable to serialize config: %w", err)
	}
	return string(data), nil
}

// ConfigEdit opens the configuration file in the default editor. Every save
// is re-validated while the editor is open; invalid saves print a warning and
// the previous configuration stays in effect. A file that does not exist yet
// is seeded with the default configuration first.
//
// A malformed existing file is left untouched so it can be repaired by hand;
// only its absence triggers seeding.
func (a *App) ConfigEdit(ctx context.Context) error {
	lg := mylog.LoggerFromContext(ctx)
	path := a.ConfigService.Path()

	if _, err := a.Runtime.Stat(path, false); err != nil {
		if err := a.ConfigService.Save(ctx, DefaultConfig()); err != nil {
			return fmt.Errorf("unable to create default config: %w", err)
		}
	}

	err := editConfigLive(ctx, a.Runtime, path, func(raw []byte) error {
		cfg, err := ParseConfig(raw)
		if err != nil {
			return fmt.Errorf("config not applied: %w", err)
		}
		lg.Debug("edited config applied",
			"path", path,
			"layout", cfg.ColumnConfig.Version,
			"language", cfg.Language)
		return nil
	})
	if err != nil {
		return err
	}

	// The next read picks up whatever the editor left behind.
	a.ConfigService.ResetCache()
	return nil
}
