package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthforge/hearth/pkg/hearth"
)

// NewLanguagesCmd returns the `languages` cobra command. It lists every
// supported interface language with its identifier, native name, and locale
// code.
func NewLanguagesCmd(deps *Deps) *cobra.Command {
	var idOnly bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "list supported interface languages",
		Long: `List every language the interface can display. The identifier is what the
config file records; the locale code names the translation catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, language := range hearth.Languages() {
				if idOnly {
					fmt.Fprintln(out, language)
					continue
				}
				fmt.Fprintf(out, "%-12s %-7s %s\n", language, language.Code(), language.NativeName())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&idOnly, "id-only", false, "show only identifiers")

	return cmd
}
