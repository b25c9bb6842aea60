package hcl

import (
	"fmt"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/schema"
)

// translate converts the HCL-specific manifest schema into the agnostic
// model, applying the structural validations the gohcl tags cannot
// express.
func (l *Loader) translate(m *schema.Manifest) (*config.Model, error) {
	if m.Project == nil {
		return nil, fmt.Errorf("manifest must contain a project block")
	}

	model := &config.Model{
		Project:   l.translateProject(m.Project),
		Toolchain: l.translateToolchain(m.Toolchain),
		Extras:    make(map[string]*config.Extras),
	}

	seen := make(map[string]struct{})
	for _, ext := range m.Extensions {
		if _, dup := seen[ext.Name]; dup {
			return nil, fmt.Errorf("duplicate extension name %q", ext.Name)
		}
		seen[ext.Name] = struct{}{}

		if ext.EntryPoint == "" && len(ext.SourceDirs) == 0 {
			return nil, fmt.Errorf("extension %q declares neither an entry point nor source directories", ext.Name)
		}
		model.Extensions = append(model.Extensions, &config.Extension{
			Name:       ext.Name,
			EntryPoint: ext.EntryPoint,
			SourceDirs: ext.SourceDirs,
			CxxFlags:   ext.CxxFlags,
			NvccFlags:  ext.NvccFlags,
		})
	}

	for _, extras := range m.Extras {
		if _, dup := model.Extras[extras.Name]; dup {
			return nil, fmt.Errorf("duplicate extras name %q", extras.Name)
		}
		model.Extras[extras.Name] = &config.Extras{
			Name:    extras.Name,
			Default: extras.Default,
			Windows: extras.Windows,
		}
	}

	return model, nil
}

// translateProject converts the HCL project block into the agnostic model.
func (l *Loader) translateProject(p *schema.Project) *config.Project {
	return &config.Project{
		Name:            p.Name,
		Version:         p.Version,
		Author:          p.Author,
		Description:     p.Description,
		URL:             p.URL,
		License:         p.License,
		Readme:          p.Readme,
		Classifiers:     p.Classifiers,
		PythonRequires:  p.PythonRequires,
		InstallRequires: p.InstallRequires,
	}
}

// translateToolchain converts the optional toolchain block. A missing
// block yields an empty Toolchain; the validator and resolver fall back
// to their built-in defaults for any unset field.
func (l *Loader) translateToolchain(t *schema.Toolchain) *config.Toolchain {
	if t == nil {
		return &config.Toolchain{}
	}
	return &config.Toolchain{
		MinCUDAVersion: t.MinCUDAVersion,
		SupportedArchs: t.SupportedArchs,
	}
}
