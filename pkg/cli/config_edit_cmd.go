package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigEditCmd returns the `config edit` cobra subcommand.
//
// Usage examples:
//
//	hearth config edit
func NewConfigEditCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "edit configuration with default editor",
		Long: `Open the configuration file in your default editor for editing.

Saves are applied live; a save that does not parse prints a warning and the
previous configuration stays in effect.

The editor is determined by the VISUAL or EDITOR environment variable,
defaulting to 'vim'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.App.ConfigEdit(cmd.Context())
		},
	}

	return cmd
}
