package hearth

import (
	"context"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
)

// ConfigService owns reading and writing the configuration file. Loading
// never hard-fails on bad content: a missing or malformed file falls back to
// the default configuration, the fallback is logged, and the default is
// persisted so the next run finds a well-formed file. Only real I/O failures
// surface, as FilesystemError.
type ConfigService struct {
	Runtime     *toolkit.Runtime
	PathService *PathService

	// ConfigPath overrides the default config file location when set.
	ConfigPath string

	cache *Config
}

func NewConfigService(rt *toolkit.Runtime, paths *PathService, configPath string) *ConfigService {
	return &ConfigService{
		Runtime:     rt,
		PathService: paths,
		ConfigPath:  configPath,
	}
}

// Path returns the effective config file path, honoring the override.
func (s *ConfigService) Path() string {
	if s.ConfigPath != "" {
		return s.ConfigPath
	}
	return s.PathService.Config()
}

func (s *ConfigService) ResetCache() {
	s.cache = nil
}

// Config returns the current configuration. When cache is true a previously
// loaded value may be returned.
func (s *ConfigService) Config(ctx context.Context, cache bool) (*Config, error) {
	if cache && s.cache != nil {
		return s.cache, nil
	}
	cfg, err := s.LoadOrDefault(ctx)
	if err != nil {
		return nil, err
	}
	s.cache = cfg
	return cfg, nil
}

// LoadOrDefault reads and parses the config file. A missing or unparsable
// file yields the default configuration, which is written back to disk so the
// fallback is durable. The returned error is non-nil only when that write
// fails.
func (s *ConfigService) LoadOrDefault(ctx context.Context) (*Config, error) {
	lg := mylog.LoggerFromContext(ctx)
	path := s.Path()

	raw, err := s.Runtime.ReadFile(path)
	if err == nil {
		cfg, perr := ParseConfig(raw)
		if perr == nil {
			lg.Debug("config loaded", "path", path)
			return cfg, nil
		}
		lg.Warn("config file is malformed, falling back to defaults", "path", path, "err", perr)
	} else {
		lg.Debug("no config file, creating the default", "path", path, "err", err)
	}

	cfg := DefaultConfig()
	if err := s.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating the config directory first.
// Failures are FilesystemError.
func (s *ConfigService) Save(ctx context.Context, cfg *Config) error {
	lg := mylog.LoggerFromContext(ctx)
	path := s.Path()

	dir := filepath.Dir(path)
	if err := s.Runtime.Mkdir(dir, 0o755, true); err != nil {
		return NewFilesystemError("mkdir", dir, err)
	}
	if err := cfg.Write(s.Runtime, path); err != nil {
		return err
	}
	lg.Debug("config saved", "path", path)
	s.cache = cfg
	return nil
}
