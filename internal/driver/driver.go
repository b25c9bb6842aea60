// Package driver is the emission layer: it aggregates the package
// metadata, the selected extras and the assembled targets into a build
// graph and hands it to a native build driver. The graph is a pure
// aggregation; no validation happens here.
package driver

import (
	"context"

	"github.com/StarCheater/SpargeAttn/internal/config"
)

// Graph is the complete handoff to a native build driver: package
// metadata plus one entry per independently compiled extension target.
type Graph struct {
	Package *config.Project
	// Extras holds the optional-dependency sets after platform selection.
	Extras  map[string][]string
	Targets []*config.Target
}

// Driver consumes an assembled build graph. Implementations decide what
// "building" means: the in-repo PlanWriter renders compiler invocations,
// while a real driver would execute them. Any failure past this interface
// belongs to the driver, not to the configurator.
type Driver interface {
	Build(ctx context.Context, graph *Graph) error
}
