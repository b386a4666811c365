// cmd/habctl/svc.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/paths"
	"github.com/habtools/habctl/internal/svcload"
)

func newSvcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svc",
		Short: "Commands relating to Supervisor services",
	}

	cmd.AddCommand(
		newSvcLoadCmd(),
		newSvcBulkLoadCmd(),
		newSvcConfigCmd(),
		newSvcStartCmd(),
		newSvcStopCmd(),
		newSvcUnloadCmd(),
		newSvcStatusCmd(),
	)

	return cmd
}

// sharedLoadFlags mirrors the service load field set on the command line.
// Defaults shown in help are the built-in defaults; only flags the operator
// actually changed enter the partial spec, so config file values are not
// shadowed by flag defaults.
type sharedLoadFlags struct {
	channel             string
	bldrURL             string
	group               string
	topology            string
	strategy            string
	updateCondition     string
	binds               []string
	bindingMode         string
	healthCheckInterval uint64
	shutdownTimeout     uint64
	force               bool
	configFrom          string
	remoteSup           string
}

func (f *sharedLoadFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.channel, "channel", svcload.DefaultChannel, "Receive updates from the specified release channel")
	fs.StringVarP(&f.bldrURL, "url", "u", svcload.DefaultBldrURL, "Specify an alternate Builder endpoint")
	fs.StringVar(&f.group, "group", svcload.DefaultGroup, "The service group with shared config and topology")
	fs.StringVarP(&f.topology, "topology", "t", "", "Service topology (standalone or leader)")
	fs.StringVarP(&f.strategy, "strategy", "s", svcload.DefaultStrategy, "The update strategy (none, at-once, rolling)")
	fs.StringVar(&f.updateCondition, "update-condition", svcload.DefaultUpdateCondition, "The condition dictating when this service should update (latest, track-channel)")
	fs.StringArrayVar(&f.binds, "bind", nil, "One or more service groups to bind to a configuration (name:service.group)")
	fs.StringVar(&f.bindingMode, "binding-mode", svcload.DefaultBindingMode, "Governs how the presence or absence of binds affects service startup (strict, relaxed)")
	fs.Uint64VarP(&f.healthCheckInterval, "health-check-interval", "i", svcload.DefaultHealthCheckInterval, "The interval in seconds on which to run health checks")
	fs.Uint64Var(&f.shutdownTimeout, "shutdown-timeout", 0, "The delay in seconds after sending the shutdown signal to wait before killing the service process")
	fs.BoolVarP(&f.force, "force", "f", false, "Load or reload an already loaded service")
	fs.StringVar(&f.configFrom, "config-from", "", "Use the package config from this path rather than the package itself")
	fs.StringVar(&f.remoteSup, "remote-sup", "", "Address of the remote Supervisor control gateway")
}

// partial converts the flags the operator actually set into a partial field
// set, the same shape a parsed config file produces.
func (f *sharedLoadFlags) partial(cmd *cobra.Command, pkgIdent string) *svcload.FileConfig {
	fc := &svcload.FileConfig{}
	if pkgIdent != "" {
		fc.PkgIdent = &pkgIdent
	}

	changed := cmd.Flags().Changed
	if changed("channel") {
		fc.Channel = &f.channel
	}
	if changed("url") {
		fc.BldrURL = &f.bldrURL
	}
	if changed("group") {
		fc.Group = &f.group
	}
	if changed("topology") {
		fc.Topology = &f.topology
	}
	if changed("strategy") {
		fc.Strategy = &f.strategy
	}
	if changed("update-condition") {
		fc.UpdateCondition = &f.updateCondition
	}
	if changed("bind") {
		fc.Bind = f.binds
	}
	if changed("binding-mode") {
		fc.BindingMode = &f.bindingMode
	}
	if changed("health-check-interval") {
		fc.HealthCheckInterval = &f.healthCheckInterval
	}
	if changed("shutdown-timeout") {
		fc.ShutdownTimeout = &f.shutdownTimeout
	}
	if changed("force") {
		fc.Force = &f.force
	}
	if changed("config-from") {
		fc.ConfigFrom = &f.configFrom
	}
	if changed("remote-sup") {
		fc.RemoteSup = &f.remoteSup
	}
	return fc
}

// resolveLoadSpec layers the command line over the shared default svc.toml
// and validates the result. The flag-derived spec is the patch base, so
// nothing from the default file can override an explicit flag.
func resolveLoadSpec(cmd *cobra.Command, flags *sharedLoadFlags, pkgIdent string) (*svcload.LoadSpec, error) {
	base := svcload.FromPartial(flags.partial(cmd, pkgIdent), svcload.SourceFlag)

	overlay, err := svcload.DefaultSpec(paths.DefaultSvcConfigFile)
	if err != nil {
		return nil, err
	}

	spec := svcload.Patch(base, overlay)
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
