// Package hearth implements the configuration core of the addon manager: the
// persisted configuration aggregate, its versioned column-layout schema, the
// enumerations it carries, and the service that loads and saves it. Loading
// is load-or-default: bad or missing content never aborts startup, it falls
// back to a logged, persisted default.
package hearth

import (
	"fmt"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// App is the facade commands talk to. It wires the runtime to the services
// that need it.
type App struct {
	// Runtime carries process-level dependencies.
	Runtime *toolkit.Runtime

	PathService   *PathService
	ConfigService *ConfigService
}

type Options struct {
	// ConfigPath overrides the default config file location when set.
	ConfigPath string
	Runtime    *toolkit.Runtime
}

func New(opts Options) (*App, error) {
	rt := opts.Runtime
	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return nil, fmt.Errorf("unable to create runtime: %w", err)
		}
	}
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime: %w", err)
	}

	pathService, err := NewPathService(rt)
	if err != nil {
		return nil, fmt.Errorf("unable to create path service: %w", err)
	}
	configService := NewConfigService(rt, pathService, opts.ConfigPath)
	return &App{
		Runtime:       rt,
		PathService:   pathService,
		ConfigService: configService,
	}, nil
}
