package common

import "github.com/spf13/cobra"

type GlobalFlags struct {
	ConfigPath string
	Debug      bool
	NoColor    bool
	Output     string
}

func BindGlobalFlags(command *cobra.Command, flags *GlobalFlags) {
	command.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file path")
	command.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "enable debug output")
	command.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable color output")
	command.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputAuto, "output format: auto|text|json|yaml")
}
