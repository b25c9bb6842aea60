package builder

import (
	"context"
	"fmt"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
	"github.com/StarCheater/SpargeAttn/internal/fsutil"
	"github.com/StarCheater/SpargeAttn/internal/gencode"
)

// sourceExtension is the discovery pattern for device sources.
const sourceExtension = ".cu"

// Assemble resolves every extension in the model into an independent
// build target. Architecture flags are appended to each target's device
// arguments; the same flags list may be shared by the caller across
// invocations because Assemble never aliases it into a target.
func Assemble(ctx context.Context, model *config.Model, flags []gencode.Flag) ([]*config.Target, error) {
	logger := ctxlog.FromContext(ctx)

	targets := make([]*config.Target, 0, len(model.Extensions))
	for _, ext := range model.Extensions {
		target, err := assembleOne(ctx, ext, flags)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble extension %q: %w", ext.Name, err)
		}
		logger.Debug("Assembled extension target.",
			"name", target.Name,
			"sources", len(target.Sources),
		)
		targets = append(targets, target)
	}
	return targets, nil
}

// assembleOne builds a single target descriptor with freshly allocated
// source and argument lists.
func assembleOne(ctx context.Context, ext *config.Extension, flags []gencode.Flag) (*config.Target, error) {
	var sources []string
	if ext.EntryPoint != "" {
		sources = append(sources, ext.EntryPoint)
	}

	discovered, err := fsutil.CollectSources(ctx, ext.SourceDirs, sourceExtension)
	if err != nil {
		return nil, config.ConfigWrap(err, "source discovery failed")
	}
	sources = append(sources, discovered...)

	nvcc := make([]string, 0, len(ext.NvccFlags)+2*len(flags))
	nvcc = append(nvcc, ext.NvccFlags...)
	nvcc = append(nvcc, gencode.Args(flags)...)

	return &config.Target{
		Name:      ext.Name,
		Sources:   sources,
		CxxFlags:  append([]string(nil), ext.CxxFlags...),
		NvccFlags: nvcc,
	}, nil
}
