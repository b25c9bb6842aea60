package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
)

// CommandSpec describes one compiler invocation in the emitted plan. The
// arguments are the opaque tokens assembled upstream, verbatim.
type CommandSpec struct {
	Target  string   `json:"target"`
	Purpose string   `json:"purpose"`
	Cmd     string   `json:"cmd"`
	Args    []string `json:"args"`
}

// Plan is the machine-readable output of the PlanWriter.
type Plan struct {
	Package  string              `json:"package"`
	Version  string              `json:"version"`
	Extras   map[string][]string `json:"extras,omitempty"`
	Commands []CommandSpec       `json:"commands"`
}

// PlanWriter is a Driver that renders the build graph as a JSON command
// plan instead of compiling anything. It exists for inspection and for
// feeding external build tooling.
type PlanWriter struct {
	out  io.Writer
	nvcc string
	cxx  string
}

// NewPlanWriter creates a PlanWriter emitting to out. nvcc is the
// validated device compiler path; the host compiler is fixed to c++ and
// resolved by the consumer of the plan.
func NewPlanWriter(out io.Writer, nvcc string) *PlanWriter {
	return &PlanWriter{out: out, nvcc: nvcc, cxx: "c++"}
}

// Build renders one device-compile command per target covering its .cu
// sources, and one host-compile command for the remaining sources, then
// writes the whole plan as indented JSON.
func (w *PlanWriter) Build(ctx context.Context, graph *Graph) error {
	logger := ctxlog.FromContext(ctx)

	plan := Plan{Extras: graph.Extras}
	if graph.Package != nil {
		plan.Package = graph.Package.Name
		plan.Version = graph.Package.Version
	}

	for _, target := range graph.Targets {
		var device, host []string
		for _, src := range target.Sources {
			if strings.HasSuffix(src, ".cu") {
				device = append(device, src)
			} else {
				host = append(host, src)
			}
		}

		if len(device) > 0 {
			args := append(append([]string(nil), target.NvccFlags...), device...)
			plan.Commands = append(plan.Commands, CommandSpec{
				Target:  target.Name,
				Purpose: "device-compile",
				Cmd:     w.nvcc,
				Args:    args,
			})
		}
		if len(host) > 0 {
			args := append(append([]string(nil), target.CxxFlags...), host...)
			plan.Commands = append(plan.Commands, CommandSpec{
				Target:  target.Name,
				Purpose: "host-compile",
				Cmd:     w.cxx,
				Args:    args,
			})
		}
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("failed to write build plan: %w", err)
	}

	logger.Debug("Build plan emitted.", "commands", len(plan.Commands))
	return nil
}
