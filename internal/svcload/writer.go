package svcload

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// GenerateConfig renders a resolved LoadSpec as a commented svc.toml
// document. Fields an operator set explicitly are written as values; fields
// still on their built-in default are written as commented-out examples, and
// unset optional fields as commented-out placeholders. The output parses
// back through LoadFile.
func GenerateConfig(s *LoadSpec) string {
	var b strings.Builder

	b.WriteString("# Service load configuration\n")
	b.WriteString("# Patched with defaults from the shared svc.toml when loaded in bulk.\n\n")

	writeStringField(&b, "pkg_ident", s.PkgIdent, "core/redis")
	writeStringField(&b, "channel", s.Channel, DefaultChannel)
	writeStringField(&b, "bldr_url", s.BldrURL, DefaultBldrURL)
	writeStringField(&b, "group", s.Group, DefaultGroup)
	writeStringField(&b, "topology", s.Topology, "standalone")
	writeStringField(&b, "strategy", s.Strategy, DefaultStrategy)
	writeStringField(&b, "update_condition", s.UpdateCondition, DefaultUpdateCondition)

	if s.Binds.Source.Explicit() {
		b.WriteString("bind = [")
		for i, bind := range s.Binds.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", bind)
		}
		b.WriteString("]\n")
	} else {
		b.WriteString("# bind = [\"database:postgresql.default\"]\n")
	}

	writeStringField(&b, "binding_mode", s.BindingMode, DefaultBindingMode)
	writeUintField(&b, "health_check_interval", s.HealthCheckInterval, DefaultHealthCheckInterval)
	writeUintField(&b, "shutdown_timeout", s.ShutdownTimeout, 8)

	if s.Force.Source.Explicit() {
		fmt.Fprintf(&b, "force = %t\n", s.Force.Value)
	} else {
		fmt.Fprintf(&b, "# force = %t\n", s.Force.Value)
	}

	writeStringField(&b, "config_from", s.ConfigFrom, "/path/to/config")
	writeStringField(&b, "remote_sup", s.RemoteSup, "127.0.0.1:9632")

	return b.String()
}

func writeStringField(b *strings.Builder, key string, v StringValue, example string) {
	if v.Source.Explicit() {
		fmt.Fprintf(b, "%s = %q\n", key, v.Value)
		return
	}
	fmt.Fprintf(b, "# %s = %q\n", key, example)
}

func writeUintField(b *strings.Builder, key string, v UintValue, example uint64) {
	if v.Source.Explicit() {
		fmt.Fprintf(b, "%s = %d\n", key, v.Value)
		return
	}
	fmt.Fprintf(b, "# %s = %d\n", key, example)
}

// ToTable writes the resolved spec as a formatted KEY/VALUE/SOURCE table.
func (s *LoadSpec) ToTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	writeStringRow(tw, "pkg_ident", s.PkgIdent)
	writeStringRow(tw, "channel", s.Channel)
	writeStringRow(tw, "bldr_url", s.BldrURL)
	writeStringRow(tw, "group", s.Group)
	writeStringRow(tw, "topology", s.Topology)
	writeStringRow(tw, "strategy", s.Strategy)
	writeStringRow(tw, "update_condition", s.UpdateCondition)
	fmt.Fprintf(tw, "bind\t%s\t%s\n", strings.Join(s.Binds.Values, ","), s.Binds.Source)
	writeStringRow(tw, "binding_mode", s.BindingMode)
	fmt.Fprintf(tw, "health_check_interval\t%d\t%s\n", s.HealthCheckInterval.Value, s.HealthCheckInterval.Source)
	if s.ShutdownTimeout.Source.IsSet() {
		fmt.Fprintf(tw, "shutdown_timeout\t%d\t%s\n", s.ShutdownTimeout.Value, s.ShutdownTimeout.Source)
	} else {
		fmt.Fprintf(tw, "shutdown_timeout\t\t%s\n", s.ShutdownTimeout.Source)
	}
	fmt.Fprintf(tw, "force\t%t\t%s\n", s.Force.Value, s.Force.Source)
	writeStringRow(tw, "config_from", s.ConfigFrom)
	writeStringRow(tw, "remote_sup", s.RemoteSup)
	tw.Flush()
}

func writeStringRow(w io.Writer, key string, v StringValue) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", key, v.Value, v.Source)
}
