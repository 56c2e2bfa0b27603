package cli

import (
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"

	"github.com/hearthforge/hearth/pkg/hearth"
)

// Deps carries the wiring shared by every subcommand. PersistentPreRunE
// fills App before any RunE fires, so subcommands can use deps.App directly.
type Deps struct {
	Runtime *toolkit.Runtime

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	App *hearth.App
}

// NewRootCmd builds the root cobra command and wires persistent flags. The
// command's PersistentPreRunE constructs the app facade and, when any log
// flag is set, replaces the runtime logger before installing it on the
// command context.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:   "hearth",
		Short: "manage World of Warcraft addon manager configuration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			app, err := hearth.New(hearth.Options{
				ConfigPath: deps.ConfigPath,
				Runtime:    rt,
			})
			if err != nil {
				return err
			}
			deps.App = app

			if deps.LogFile != "" || deps.LogJSON || deps.LogLevel != "" {
				var out = os.Stderr
				if deps.LogFile != "" {
					f, err := os.OpenFile(deps.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
					if err != nil {
						return err
					}
					out = f
				}
				lg := mylog.NewLogger(mylog.LoggerConfig{
					Out:     out,
					Level:   mylog.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				})
				deps.Runtime.Logger = lg
			}

			ctx = mylog.WithLogger(ctx, deps.Runtime.Logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "info", "minimum log level")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "", "path to config file")

	cmd.AddCommand(
		NewConfigCmd(deps),
		NewFlavorsCmd(deps),
		NewLanguagesCmd(deps),
		NewPathsCmd(deps),
	)

	return cmd
}
