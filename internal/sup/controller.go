// Package sup talks to a running Supervisor's control gateway. The
// configuration-resolution core hands fully resolved load specs to this
// package; everything past that point (execution, supervision, updates) is
// the Supervisor's business.
package sup

import (
	"context"

	"github.com/habtools/habctl/internal/svcload"
)

// Controller is the interface to a running Supervisor. A resolved LoadSpec
// is consumed exactly once per operation.
type Controller interface {
	// SvcLoad submits a resolved load spec for execution.
	SvcLoad(ctx context.Context, spec *svcload.LoadSpec) error

	// SvcStart starts a loaded, but stopped, service.
	SvcStart(ctx context.Context, pkgIdent string) error

	// SvcStop stops a running service. shutdownTimeout overrides the
	// package default when non-nil.
	SvcStop(ctx context.Context, pkgIdent string, shutdownTimeout *uint64) error

	// SvcUnload unloads a service, stopping it first if running.
	SvcUnload(ctx context.Context, pkgIdent string, shutdownTimeout *uint64) error

	// SvcStatus queries the status of services. An empty pkgIdent queries
	// all of them.
	SvcStatus(ctx context.Context, pkgIdent string) ([]ServiceStatus, error)
}

// ServiceStatus describes one service as reported by the Supervisor.
type ServiceStatus struct {
	PkgIdent string `json:"pkg_ident"`
	Group    string `json:"group"`
	State    string `json:"state"`
	Elapsed  uint64 `json:"elapsed_s"`
	PID      uint32 `json:"pid,omitempty"`
}
