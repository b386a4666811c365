// cmd/habctl/svc_ops.go
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/interactive"
)

func newSvcStartCmd() *cobra.Command {
	var remoteSup string

	cmd := &cobra.Command{
		Use:   "start PKG_IDENT",
		Short: "Start a loaded, but stopped, service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := newController(remoteSup)
			if err := ctl.SvcStart(cmd.Context(), args[0]); err != nil {
				return err
			}
			logger.Success("Started %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")
	return cmd
}

func newSvcStopCmd() *cobra.Command {
	var (
		remoteSup       string
		shutdownTimeout uint64
	)

	cmd := &cobra.Command{
		Use:   "stop PKG_IDENT",
		Short: "Stop a running service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := newController(remoteSup)
			var timeout *uint64
			if cmd.Flags().Changed("shutdown-timeout") {
				timeout = &shutdownTimeout
			}
			if err := ctl.SvcStop(cmd.Context(), args[0], timeout); err != nil {
				return err
			}
			logger.Success("Stopped %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")
	cmd.Flags().Uint64Var(&shutdownTimeout, "shutdown-timeout", 0, "The delay in seconds after sending the shutdown signal to wait before killing the service process")
	return cmd
}

func newSvcUnloadCmd() *cobra.Command {
	var (
		remoteSup       string
		shutdownTimeout uint64
		yes             bool
	)

	cmd := &cobra.Command{
		Use:   "unload PKG_IDENT",
		Short: "Unload a service, stopping it first if running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := interactive.Confirm(fmt.Sprintf("Unload %s", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					logger.Info("Aborted")
					return nil
				}
			}

			ctl := newController(remoteSup)
			var timeout *uint64
			if cmd.Flags().Changed("shutdown-timeout") {
				timeout = &shutdownTimeout
			}
			if err := ctl.SvcUnload(cmd.Context(), args[0], timeout); err != nil {
				return err
			}
			logger.Success("Unloaded %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")
	cmd.Flags().Uint64Var(&shutdownTimeout, "shutdown-timeout", 0, "The delay in seconds after sending the shutdown signal to wait before killing the service process")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newSvcStatusCmd() *cobra.Command {
	var remoteSup string

	cmd := &cobra.Command{
		Use:   "status [PKG_IDENT]",
		Short: "Query the status of services",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgIdent := ""
			if len(args) == 1 {
				pkgIdent = args[0]
			}

			ctl := newController(remoteSup)
			statuses, err := ctl.SvcStatus(cmd.Context(), pkgIdent)
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				logger.Info("No services loaded")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PKG_IDENT\tGROUP\tSTATE\tELAPSED(S)\tPID")
			for _, st := range statuses {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", st.PkgIdent, st.Group, st.State, st.Elapsed, st.PID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")
	return cmd
}
