package hearth

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthforge/hearth/pkg/wow"
)

// PathsOptions configures behavior for App.Paths.
type PathsOptions struct {
	// Flavor limits the report to one flavor id. Empty reports every flavor
	// with a recorded installation directory.
	Flavor string
}

// Paths renders where hearth reads and writes game files, per flavor.
// Resolution follows the live rules, so a missing addon directory under an
// existing installation root is created while reporting. Flavors with no
// recorded installation directory are skipped unless asked for by name.
func (a *App) Paths(ctx context.Context, opts PathsOptions) (string, error) {
	cfg, err := a.ConfigService.Config(ctx, true)
	if err != nil {
		return "", err
	}

	flavors := wow.Flavors()
	if opts.Flavor != "" {
		flavor, err := wow.ParseFlavor(opts.Flavor)
		if err != nil {
			return "", err
		}
		flavors = []wow.Flavor{flavor}
	}

	var b strings.Builder
	for _, flavor := range flavors {
		install, ok := cfg.Wow.Directory(flavor)
		if !ok {
			if opts.Flavor != "" {
				fmt.Fprintf(&b, "%s: no installation directory recorded\n", flavor)
			}
			continue
		}
		root, _ := cfg.Wow.RootDirectory(flavor)
		addons, _ := cfg.Wow.AddonDirectory(a.Runtime, flavor)
		wtf, _ := cfg.Wow.WTFDirectory(a.Runtime, flavor)
		downloads, _ := cfg.Wow.DownloadDirectory(flavor)

		fmt.Fprintf(&b, "%s:\n", flavor)
		fmt.Fprintf(&b, "  root:      %s\n", root)
		fmt.Fprintf(&b, "  install:   %s\n", install)
		fmt.Fprintf(&b, "  addons:    %s\n", addons)
		fmt.Fprintf(&b, "  wtf:       %s\n", wtf)
		fmt.Fprintf(&b, "  downloads: %s\n", downloads)
	}
	if b.Len() == 0 {
		return "no installation directories recorded\n", nil
	}
	return b.String(), nil
}
