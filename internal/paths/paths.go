// Package paths provides centralized path management for habctl and the
// Supervisor's well-known filesystem layout.
package paths

import "os"

// Supervisor filesystem layout.
const (
	// RootDir is the Supervisor's filesystem root.
	RootDir = "/hab"

	// SupDir holds Supervisor runtime state.
	SupDir = "/hab/sup"

	// DefaultConfigDir holds shared default configuration.
	DefaultConfigDir = "/hab/sup/default/config"

	// DefaultSvcConfigDir is the default root scanned by `svc bulkload`.
	// Its absence is tolerated when it is the sole requested path.
	DefaultSvcConfigDir = "/hab/sup/default/config/svc"

	// DefaultSvcConfigFile holds the shared default service load
	// configuration patched into every discovered service config.
	DefaultSvcConfigFile = "/hab/sup/default/config/svc.toml"

	// SvcConfigExt is the extension service config files must carry to be
	// picked up during bulk discovery.
	SvcConfigExt = ".toml"
)

// DefaultCtlGatewayAddr is the local Supervisor control gateway address.
const DefaultCtlGatewayAddr = "127.0.0.1:9632"

// Path existence helpers

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
