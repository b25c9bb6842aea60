// Package config defines the format-agnostic build-manifest model for the
// application, along with the Loader interface for reading it and the
// ConfigError type used for fatal configuration failures.
//
// The `config.Model` is the single source of truth for the `builder`,
// `platform` and `driver` packages. Concrete Loader implementations, such
// as for HCL, are provided in separate packages.
package config
