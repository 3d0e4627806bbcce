package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crmarques/driftscan/debugctx"
	analyzecmd "github.com/crmarques/driftscan/internal/cli/analyze"
	"github.com/crmarques/driftscan/internal/cli/common"
	versioncmd "github.com/crmarques/driftscan/internal/cli/version"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	var globalFlags common.GlobalFlags

	root := &cobra.Command{
		Use:   "driftscan",
		Short: "Detect configuration drift between observed resources and IaC declarations",
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		Args: cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if err := common.ValidateOutputFormat(globalFlags.Output); err != nil {
				return err
			}
			if globalFlags.NoColor {
				color.NoColor = true
			}

			commandContext := context.Background()
			commandContext = debugctx.With(commandContext, globalFlags.Debug, command.ErrOrStderr())
			command.SetContext(commandContext)

			debugctx.Printf(
				command.Context(),
				"root flags config=%q output=%q no_color=%t command=%q",
				globalFlags.ConfigPath,
				globalFlags.Output,
				globalFlags.NoColor,
				command.CommandPath(),
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	common.BindGlobalFlags(root, &globalFlags)

	commandDeps := analyzecmd.Dependencies{
		ResourceLists: deps.ResourceLists,
		Reports:       deps.Reports,
		Config:        deps.Config,
		NewUploader:   deps.NewUploader,
	}
	root.AddCommand(analyzecmd.NewCommand(commandDeps, &globalFlags))
	root.AddCommand(versioncmd.NewCommand(&globalFlags))

	return root
}
