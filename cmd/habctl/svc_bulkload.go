// cmd/habctl/svc_bulkload.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/paths"
	"github.com/habtools/habctl/internal/svcload"
)

func newSvcBulkLoadCmd() *cobra.Command {
	var (
		svcConfigPaths []string
		remoteSup      string
	)

	cmd := &cobra.Command{
		Use:   "bulkload",
		Short: "Load services from service config files found under the given paths",
		Long: `Load services using the service config files from the specified paths.

The service config files are in the format generated by
'habctl svc load --generate-config'. The specified paths are searched
recursively for all files with a .toml extension. Service config files are
patched with the default values from ` + paths.DefaultSvcConfigFile + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := svcload.NewResolver(paths.DefaultSvcConfigDir, paths.DefaultSvcConfigFile, logger)
			specs, err := resolver.LoadAll(svcConfigPaths)
			if err != nil {
				return err
			}
			if len(specs) == 0 {
				logger.Info("No service config files found")
				return nil
			}

			ctl := newController(remoteSup)
			for _, spec := range specs {
				if err := ctl.SvcLoad(cmd.Context(), spec); err != nil {
					return err
				}
				logger.Success("Loaded %s", spec.PkgIdent.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&svcConfigPaths, "svc-config-paths", []string{paths.DefaultSvcConfigDir}, "Paths to files or directories of service config files")
	cmd.Flags().StringVar(&remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")

	return cmd
}
