package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthforge/hearth/pkg/hearth"
)

// NewConfigCmd returns the `config` cobra command.
//
// Usage examples:
//
//	hearth config
//	hearth config --template
//	hearth config edit
func NewConfigCmd(deps *Deps) *cobra.Command {
	var opts hearth.ConfigOptions

	cmd := &cobra.Command{
		Use:   "config",
		Short: "display configuration",
		Long: `Display the effective configuration as YAML.

On a first run the default configuration is written to disk before it is
shown. A file that cannot be parsed is replaced with the default.

Use 'hearth config edit' to modify the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := deps.App.Config(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Template, "template", false, "display template configuration")

	// Add the edit subcommand
	cmd.AddCommand(NewConfigEditCmd(deps))

	return cmd
}
