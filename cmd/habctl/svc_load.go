// cmd/habctl/svc_load.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/svcload"
)

func newSvcLoadCmd() *cobra.Command {
	flags := &sharedLoadFlags{}
	var generateConfig bool

	cmd := &cobra.Command{
		Use:   "load PKG_IDENT",
		Short: "Load a service to be started and supervised",
		Long: `Load a service to be started and supervised by the Supervisor from a
package identifier (ex: core/redis, core/busybox-static/1.42.2).

Values not set on the command line are filled in from the shared default
config file, then from built-in defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveLoadSpec(cmd, flags, args[0])
			if err != nil {
				return err
			}

			if generateConfig {
				fmt.Print(svcload.GenerateConfig(spec))
				return nil
			}

			ctl := newController(spec.RemoteSup.Value)
			if err := ctl.SvcLoad(cmd.Context(), spec); err != nil {
				return err
			}
			logger.Success("Loaded %s", spec.PkgIdent.Value)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&generateConfig, "generate-config", false, "Print the resolved service config file instead of loading the service")

	return cmd
}
