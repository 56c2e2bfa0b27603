package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthforge/hearth/pkg/wow"
)

// NewFlavorsCmd returns the `flavors` cobra command. It lists every known
// flavor with its identifier, display label, installation folder token, and
// the recorded installation directory when one exists.
func NewFlavorsCmd(deps *Deps) *cobra.Command {
	var idOnly bool

	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "list known game flavors",
		Long: `List every flavor the configuration can reference. The identifier is what
the config file and the paths command use; the folder is the launcher-owned
installation directory name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if idOnly {
				for _, flavor := range wow.Flavors() {
					fmt.Fprintln(out, flavor)
				}
				return nil
			}

			cfg, err := deps.App.ConfigService.Config(cmd.Context(), true)
			if err != nil {
				return err
			}
			for _, flavor := range wow.Flavors() {
				line := fmt.Sprintf("%-14s %-14s %-16s", flavor, flavor.Label(), flavor.FolderName())
				if dir, ok := cfg.Wow.Directory(flavor); ok {
					line += " " + dir
				}
				fmt.Fprintln(out, strings.TrimRight(line, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&idOnly, "id-only", false, "show only identifiers")

	return cmd
}
