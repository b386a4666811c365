// cmd/habctl/root.go
package main

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/output"
	"github.com/habtools/habctl/internal/sup"
	"github.com/habtools/habctl/internal/version"
)

var (
	flagVerbose bool
	flagNoColor bool

	logger = output.NewLogger()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "habctl",
		Short: "CLI for the package-based service Supervisor",
		Long: `habctl manages services run by the Supervisor.

Service load parameters are resolved from command-line flags, discovered
service config files, the shared default svc.toml, and built-in defaults,
in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(flagVerbose)
			logger.SetNoColor(flagNoColor)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newSvcCmd(),
		version.NewCmd("habctl"),
	)

	return rootCmd
}

// newController builds the Supervisor client used to execute resolved specs.
func newController(remoteSup string) sup.Controller {
	ctlLogger := log.NewNopLogger()
	if flagVerbose {
		ctlLogger = log.NewLogger(os.Stderr)
	}
	return sup.NewClient(remoteSup, ctlLogger)
}
