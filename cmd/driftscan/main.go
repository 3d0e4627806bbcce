package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/crmarques/driftscan/core"
	"github.com/crmarques/driftscan/internal/cli"
)

func main() {
	driftscanContext, err := core.NewDriftscanContext(core.BootstrapConfig{
		ConfigPath: configPathFromArgs(os.Args[1:]),
	})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCodeForError(err))
	}

	deps := cli.Dependencies{
		Config:        driftscanContext.Config,
		ResourceLists: driftscanContext.ResourceLists,
		Reports:       driftscanContext.Reports,
		NewUploader:   core.NewReportUploader,
	}

	if err := cli.Execute(deps); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}

// configPathFromArgs pre-reads the --config flag so the bootstrap can load
// the right file before cobra parses anything.
func configPathFromArgs(args []string) string {
	flags := pflag.NewFlagSet("bootstrap", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)

	var configPath string
	flags.StringVar(&configPath, "config", "", "config file path")
	if err := flags.Parse(args); err != nil {
		return ""
	}
	return configPath
}
