// Package schema defines the HCL-specific decode structures for the build
// manifest. These structs exist only to give gohcl a shape to decode
// into; the hcl package translates them into the format-agnostic
// config.Model before anything else sees them.
package schema

// Project represents the `project` block: package metadata handed through
// to the native build driver untouched.
type Project struct {
	Name            string   `hcl:"name"`
	Version         string   `hcl:"version"`
	Author          string   `hcl:"author,optional"`
	Description     string   `hcl:"description,optional"`
	URL             string   `hcl:"url,optional"`
	License         string   `hcl:"license,optional"`
	Readme          string   `hcl:"readme,optional"`
	Classifiers     []string `hcl:"classifiers,optional"`
	PythonRequires  string   `hcl:"python_requires,optional"`
	InstallRequires []string `hcl:"install_requires,optional"`
}

// Toolchain represents the `toolchain` block: overridable policy data for
// the validator and the architecture resolver.
type Toolchain struct {
	MinCUDAVersion string   `hcl:"min_cuda_version,optional"`
	SupportedArchs []string `hcl:"supported_archs,optional"`
}

// Extension represents an `extension "<name>"` block: one independently
// compiled native module with its own sources and compiler arguments.
type Extension struct {
	Name       string   `hcl:"name,label"`
	EntryPoint string   `hcl:"entry_point,optional"`
	SourceDirs []string `hcl:"source_dirs,optional"`
	CxxFlags   []string `hcl:"cxx_flags,optional"`
	NvccFlags  []string `hcl:"nvcc_flags,optional"`
}

// Extras represents an `extras "<name>"` block: one named
// optional-dependency set with a Windows alternate.
type Extras struct {
	Name    string   `hcl:"name,label"`
	Default []string `hcl:"default"`
	Windows []string `hcl:"windows,optional"`
}

// Manifest represents the top-level structure of a build manifest file,
// containing the project metadata and all defined extensions.
type Manifest struct {
	Project    *Project     `hcl:"project,block"`
	Toolchain  *Toolchain   `hcl:"toolchain,block"`
	Extensions []*Extension `hcl:"extension,block"`
	Extras     []*Extras    `hcl:"extras,block"`
}
