package hcl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/hcl"
	"github.com/StarCheater/SpargeAttn/internal/testutil"
)

const fullManifest = `
project {
  name             = "spas_sage_attn"
  version          = "0.1.0"
  author           = "SpargeAttn Team"
  python_requires  = ">=3.9"
  install_requires = ["torch>=2.3.0"]
}

toolchain {
  min_cuda_version = "12.0"
  supported_archs  = ["8.0", "8.6", "8.9", "9.0"]
}

extension "_qattn" {
  entry_point = "csrc/qattn/pybind.cpp"
  source_dirs = ["csrc/qattn"]
  cxx_flags   = ["-O3", "-fopenmp", "-std=c++17"]
  nvcc_flags  = ["-O3", "--use_fast_math", "--threads=${build.jobs}"]
}

extension "_fused" {
  source_dirs = ["csrc/fused"]
  cxx_flags   = ["-O3", "-fopenmp", "-std=c++17"]
  nvcc_flags  = ["-O3", "--use_fast_math"]
}

extras "triton" {
  default = ["triton>=3.2.0"]
  windows = ["triton-windows>=3.3.1"]
}
`

func TestLoad_FullManifest(t *testing.T) {
	loader := hcl.NewLoader()
	model, err := loader.Load(context.Background(), testutil.WriteManifest(t, fullManifest), config.LoadOptions{Jobs: 8})
	require.NoError(t, err)

	require.Equal(t, "spas_sage_attn", model.Project.Name)
	require.Equal(t, "0.1.0", model.Project.Version)
	require.Equal(t, []string{"torch>=2.3.0"}, model.Project.InstallRequires)
	require.Equal(t, "12.0", model.Toolchain.MinCUDAVersion)
	require.Equal(t, []string{"8.0", "8.6", "8.9", "9.0"}, model.Toolchain.SupportedArchs)

	require.Len(t, model.Extensions, 2)
	want := &config.Extension{
		Name:       "_qattn",
		EntryPoint: "csrc/qattn/pybind.cpp",
		SourceDirs: []string{"csrc/qattn"},
		CxxFlags:   []string{"-O3", "-fopenmp", "-std=c++17"},
		NvccFlags:  []string{"-O3", "--use_fast_math", "--threads=8"},
	}
	if diff := cmp.Diff(want, model.Extensions[0]); diff != "" {
		t.Fatalf("extension mismatch (-want +got):\n%s", diff)
	}

	require.Contains(t, model.Extras, "triton")
	require.Equal(t, []string{"triton-windows>=3.3.1"}, model.Extras["triton"].Windows)
}

func TestLoad_JobsInterpolation(t *testing.T) {
	loader := hcl.NewLoader()
	model, err := loader.Load(context.Background(), testutil.WriteManifest(t, fullManifest), config.LoadOptions{Jobs: 4})
	require.NoError(t, err)
	require.Contains(t, model.Extensions[0].NvccFlags, "--threads=4")
}

func TestLoad_ReadmeBecomesLongDescription(t *testing.T) {
	path := testutil.WriteManifest(t, `
project {
  name    = "p"
  version = "0.0.1"
  readme  = "README.md"
}
`)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "README.md"), []byte("# SpargeAttn\n"), 0o644))

	loader := hcl.NewLoader()
	model, err := loader.Load(context.Background(), path, config.LoadOptions{Jobs: 1})
	require.NoError(t, err)
	require.Equal(t, "# SpargeAttn\n", model.Project.LongDescription)
}

func TestLoad_MissingReadmeIsFatal(t *testing.T) {
	path := testutil.WriteManifest(t, `
project {
  name    = "p"
  version = "0.0.1"
  readme  = "README.md"
}
`)

	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), path, config.LoadOptions{Jobs: 1})

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, err.Error(), "README.md")
}

func TestLoad_MissingManifest(t *testing.T) {
	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"), config.LoadOptions{Jobs: 1})

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MalformedManifest(t *testing.T) {
	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), testutil.WriteManifest(t, `project {`), config.LoadOptions{Jobs: 1})

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MissingProjectBlock(t *testing.T) {
	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), testutil.WriteManifest(t, `
extension "_fused" {
  source_dirs = ["csrc/fused"]
}
`), config.LoadOptions{Jobs: 1})
	require.ErrorContains(t, err, "project block")
}

func TestLoad_DuplicateExtension(t *testing.T) {
	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), testutil.WriteManifest(t, `
project {
  name    = "p"
  version = "0.0.1"
}

extension "_x" {
  source_dirs = ["a"]
}

extension "_x" {
  source_dirs = ["b"]
}
`), config.LoadOptions{Jobs: 1})
	require.ErrorContains(t, err, `duplicate extension name "_x"`)
}

func TestLoad_ExtensionWithoutSources(t *testing.T) {
	loader := hcl.NewLoader()
	_, err := loader.Load(context.Background(), testutil.WriteManifest(t, `
project {
  name    = "p"
  version = "0.0.1"
}

extension "_empty" {
  cxx_flags = ["-O3"]
}
`), config.LoadOptions{Jobs: 1})
	require.ErrorContains(t, err, "neither an entry point nor source directories")
}
