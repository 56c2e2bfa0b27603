package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthforge/hearth/pkg/hearth"
	"github.com/hearthforge/hearth/pkg/wow"
)

// NewPathsCmd returns the `paths` cobra command.
//
// Usage examples:
//
//	hearth paths
//	hearth paths retail
func NewPathsCmd(deps *Deps) *cobra.Command {
	var opts hearth.PathsOptions

	cmd := &cobra.Command{
		Use:   "paths [flavor]",
		Short: "display game directories per flavor",
		Long: `Display the directories hearth uses for each configured flavor: the
installation root, the addon directory, the WTF directory, and the download
target. Pass a flavor id to limit the report to one flavor.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, flavor := range wow.Flavors() {
				ids = append(ids, flavor.String())
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Flavor = args[0]
			}
			output, err := deps.App.Paths(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	return cmd
}
