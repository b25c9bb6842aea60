package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/StarCheater/SpargeAttn/internal/builder"
	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
	"github.com/StarCheater/SpargeAttn/internal/driver"
	"github.com/StarCheater/SpargeAttn/internal/gencode"
	"github.com/StarCheater/SpargeAttn/internal/platform"
	"github.com/StarCheater/SpargeAttn/internal/toolchain"
)

// Run executes the build-configuration pipeline: load the manifest,
// validate the toolchain, resolve architecture flags, assemble targets,
// apply platform overrides and emit the build graph. Each stage runs
// exactly once, sequentially; any ConfigError aborts before emission.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("build_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.ManifestPath, config.LoadOptions{Jobs: a.config.Jobs})
	if err != nil {
		return fmt.Errorf("failed to load build manifest: %w", err)
	}

	min := toolchain.DefaultMinVersion
	if model.Toolchain.MinCUDAVersion != "" {
		min, err = toolchain.ParseVersion(model.Toolchain.MinCUDAVersion)
		if err != nil {
			return config.ConfigWrap(err, "invalid min_cuda_version in manifest")
		}
	}

	cudaHome := toolchain.Locate(a.getenv)
	if err := toolchain.Validate(ctx, cudaHome, min); err != nil {
		return err
	}
	logger.Info("CUDA toolchain validated.", "cuda_home", cudaHome)

	archList := a.config.ArchList
	if !a.config.ArchListSet {
		archList = a.getenv("TORCH_CUDA_ARCH_LIST")
	}
	flags := gencode.Resolve(ctx, archList, gencode.NewSet(model.Toolchain.SupportedArchs))
	if len(flags) == 0 {
		logger.Warn("No target architectures resolved; targets will be compiled for no hardware.")
	}

	targets, err := builder.Assemble(ctx, model, flags)
	if err != nil {
		return err
	}
	logger.Info("Extension targets assembled.", "count", len(targets))

	extras := platform.Apply(targets, model.Extras, a.goos)
	if err := platform.ConfigureEnv(a.goos, a.getenv, a.setenv); err != nil {
		return fmt.Errorf("failed to configure platform environment: %w", err)
	}

	graph := &driver.Graph{
		Package: model.Project,
		Extras:  extras,
		Targets: targets,
	}

	drv := a.driver
	if drv == nil {
		planOut := io.Writer(a.outW)
		if a.config.PlanPath != "" && a.config.PlanPath != "-" {
			f, err := os.Create(a.config.PlanPath)
			if err != nil {
				return config.ConfigWrap(err, "cannot create plan file %s", a.config.PlanPath)
			}
			defer f.Close()
			planOut = f
		}
		drv = driver.NewPlanWriter(planOut, toolchain.NvccPath(cudaHome))
	}
	if err := drv.Build(ctx, graph); err != nil {
		return fmt.Errorf("build driver failed: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
