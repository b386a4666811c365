// cmd/habctl/svc_config.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/paths"
	"github.com/habtools/habctl/internal/svcload"
)

func newSvcConfigCmd() *cobra.Command {
	flags := &sharedLoadFlags{}
	var generate bool

	cmd := &cobra.Command{
		Use:   "config [PKG_IDENT]",
		Short: "Show the effective service load configuration",
		Long: `Show the configuration a 'svc load' would use, with the source of every
value (flag, file, default-file, environment, builtin).

With --generate, print a service config file suitable for
'habctl svc bulkload' instead of the table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgIdent := ""
			if len(args) == 1 {
				pkgIdent = args[0]
			}

			base := svcload.FromPartial(flags.partial(cmd, pkgIdent), svcload.SourceFlag)
			overlay, err := svcload.DefaultSpec(paths.DefaultSvcConfigFile)
			if err != nil {
				return err
			}
			spec := svcload.Patch(base, overlay)

			// A bare `svc config` with no package identity is still useful
			// for inspecting defaults, so only validate when generating a
			// loadable file.
			if generate {
				if err := spec.Validate(); err != nil {
					return err
				}
				fmt.Print(svcload.GenerateConfig(spec))
				return nil
			}

			spec.ToTable(os.Stdout)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&generate, "generate", false, "Print a service config file instead of the table")

	return cmd
}
