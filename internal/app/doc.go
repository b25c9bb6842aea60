// Package app encapsulates the application's dependencies, configuration
// and lifecycle. It owns the process-boundary concerns (logger creation,
// environment reads, output destinations) and wires the build pipeline:
// manifest loading, toolchain validation, architecture resolution, target
// assembly, platform overrides and build-graph emission.
package app
