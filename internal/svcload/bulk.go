package svcload

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/habtools/habctl/internal/output"
	"github.com/habtools/habctl/internal/paths"
)

// Resolver discovers service config files under one or more paths and
// resolves each against the shared default configuration.
type Resolver struct {
	defaultDir  string
	defaultFile string
	logger      *output.Logger
}

// NewResolver creates a Resolver. defaultDir is the well-known bulk-scan
// root and defaultFile the shared default svc.toml; pass
// paths.DefaultSvcConfigDir and paths.DefaultSvcConfigFile outside of tests.
func NewResolver(defaultDir, defaultFile string, logger *output.Logger) *Resolver {
	return &Resolver{
		defaultDir:  defaultDir,
		defaultFile: defaultFile,
		logger:      logger,
	}
}

// DefaultSpec loads the shared default LoadSpec from the given file. A
// missing file is not an error: it yields an all-built-in-default spec.
func DefaultSpec(path string) (*LoadSpec, error) {
	if !paths.IsFile(path) {
		return NewLoadSpec(), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromPartial(cfg, SourceDefaultFile), nil
}

// LoadAll recursively walks the given paths in order and resolves every
// regular file with a .toml extension into a LoadSpec, patched against the
// shared default spec. Results preserve traversal order. The first
// traversal or parse error aborts the whole operation.
//
// Exception: when the input is exactly the well-known default root and that
// root does not exist, LoadAll returns an empty result. This lets the
// Supervisor run without anyone having created the directory.
func (r *Resolver) LoadAll(svcPaths []string) ([]*LoadSpec, error) {
	if len(svcPaths) == 1 && svcPaths[0] == r.defaultDir && !paths.Exists(r.defaultDir) {
		return nil, nil
	}

	// The shared default is loaded once and read-only thereafter.
	defaultSpec, err := DefaultSpec(r.defaultFile)
	if err != nil {
		return nil, err
	}

	var specs []*LoadSpec
	for _, root := range svcPaths {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &FilesystemError{Path: path, Err: err}
			}
			if !d.Type().IsRegular() || filepath.Ext(path) != paths.SvcConfigExt {
				return nil
			}
			cfg, err := LoadFile(path)
			if err != nil {
				return err
			}
			// The discovered file is the higher-precedence base; the shared
			// default only fills its gaps.
			spec := Patch(FromPartial(cfg, SourceFile), defaultSpec)
			if err := spec.Validate(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if r.logger != nil {
				r.logger.Debug("Resolved service config: %s", path)
			}
			specs = append(specs, spec)
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	return specs, nil
}
