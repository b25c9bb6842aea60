package config

import "context"

// LoadOptions carries the values a Loader exposes to manifest
// expressions, so that manifests never read ambient process state.
type LoadOptions struct {
	// Jobs is the requested device-compiler parallelism, available to
	// manifest expressions as build.jobs.
	Jobs int
}

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest at the given path and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string, opts LoadOptions) (*Model, error)
}
