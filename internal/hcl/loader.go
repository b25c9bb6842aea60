package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
	"github.com/StarCheater/SpargeAttn/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the manifest file at path, evaluates its expressions against
// the build variables derived from opts, and translates the result into
// the format-agnostic model. An unreadable or malformed manifest is a
// fatal configuration error.
func (l *Loader) Load(ctx context.Context, path string, opts config.LoadOptions) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, config.ConfigWrap(err, "build manifest not found at %s", path)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, config.ConfigWrap(diags, "failed to parse manifest %s", path)
	}

	var manifest schema.Manifest
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(opts), &manifest)
	if diags.HasErrors() {
		return nil, config.ConfigWrap(diags, "failed to decode manifest %s", path)
	}

	model, err := l.translate(&manifest)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	// The readme feeds the package's long description, so a declared but
	// missing file is a packaging-metadata failure, not a soft miss.
	if model.Project.Readme != "" {
		readmePath := filepath.Join(filepath.Dir(path), model.Project.Readme)
		data, err := os.ReadFile(readmePath)
		if err != nil {
			return nil, config.ConfigWrap(err, "readme not found at %s", readmePath)
		}
		model.Project.LongDescription = string(data)
	}

	logger.Debug("HCL loading complete.",
		"extensions", len(model.Extensions),
		"extras", len(model.Extras),
	)
	return model, nil
}

// evalContext builds the expression scope available to manifest authors.
// Only the `build` object is exposed; manifests never read ambient
// process state directly.
func (l *Loader) evalContext(opts config.LoadOptions) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"build": cty.ObjectVal(map[string]cty.Value{
				"jobs": cty.NumberIntVal(int64(opts.Jobs)),
			}),
		},
	}
}
