// Package gencode resolves requested GPU compute capabilities into nvcc
// code-generation flags. Unsupported capabilities are warned about and
// dropped; they never fail the build.
package gencode

import (
	"context"
	"strings"

	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
)

// DefaultSupported lists the compute capabilities this build system can
// generate code for. The manifest toolchain block may narrow or extend it.
var DefaultSupported = []string{"8.0", "8.6", "8.9", "9.0"}

// Set is a membership set of compute-capability identifiers.
type Set map[string]struct{}

// NewSet builds a Set from a list of identifiers. An empty list yields
// the default support matrix.
func NewSet(archs []string) Set {
	if len(archs) == 0 {
		archs = DefaultSupported
	}
	s := make(Set, len(archs))
	for _, a := range archs {
		s[a] = struct{}{}
	}
	return s
}

// Flag is one resolved code-generation directive: a virtual-architecture
// compile target paired with a real-architecture binary target for the
// same capability.
type Flag struct {
	// Code is the compact capability code, e.g. "80" for capability 8.0.
	Code string
}

// Args renders the flag as nvcc arguments.
func (f Flag) Args() []string {
	return []string{"-gencode", "arch=compute_" + f.Code + ",code=sm_" + f.Code}
}

// Resolve parses a whitespace- or semicolon-separated capability list and
// returns one Flag per supported entry, in input order. Repeated entries
// are kept. Unsupported entries are dropped with a warning naming the
// token; an empty input resolves to no flags without warning.
func Resolve(ctx context.Context, archList string, supported Set) []Flag {
	logger := ctxlog.FromContext(ctx)

	var flags []Flag
	for _, arch := range strings.Split(strings.ReplaceAll(archList, " ", ";"), ";") {
		if arch == "" {
			continue
		}
		if _, ok := supported[arch]; !ok {
			logger.Warn("Unsupported architecture will be ignored.", "arch", arch)
			continue
		}
		flags = append(flags, Flag{Code: strings.ReplaceAll(arch, ".", "")})
	}
	return flags
}

// Args flattens a list of flags into the nvcc argument tokens, preserving
// order.
func Args(flags []Flag) []string {
	args := make([]string, 0, 2*len(flags))
	for _, f := range flags {
		args = append(args, f.Args()...)
	}
	return args
}
