package config

// Model is the unified, format-agnostic representation of the entire
// build manifest: package metadata, toolchain policy, extension targets
// and optional-dependency extras.
type Model struct {
	Project    *Project
	Toolchain  *Toolchain
	Extensions []*Extension
	Extras     map[string]*Extras
}

// Project holds the package metadata forwarded verbatim to the native
// build driver. None of it influences compilation.
type Project struct {
	Name        string
	Version     string
	Author      string
	Description string
	URL         string
	License     string
	// Readme names the documentation file, relative to the manifest,
	// whose content becomes LongDescription. When set, the file must
	// exist.
	Readme          string
	LongDescription string
	Classifiers     []string
	PythonRequires  string
	InstallRequires []string
}

// Toolchain holds the build-system policy data: the minimum accepted CUDA
// release and the set of compute capabilities the build is willing to
// generate code for. Both are manifest-overridable constants, not logic.
type Toolchain struct {
	MinCUDAVersion string
	SupportedArchs []string
}

// Extension is the format-agnostic representation of one `extension`
// block: a named, independently compiled native module.
type Extension struct {
	Name       string
	EntryPoint string
	SourceDirs []string
	CxxFlags   []string
	NvccFlags  []string
}

// Extras is one named optional-dependency set, with an alternate list
// substituted on Windows hosts.
type Extras struct {
	Name    string
	Default []string
	Windows []string
}

// Target is one fully resolved build unit handed to the native build
// driver. Sources and both argument lists are owned by the target;
// targets never share backing arrays.
type Target struct {
	Name     string
	Sources  []string
	CxxFlags []string
	// NvccFlags carries the device-compiler arguments, including the
	// resolved -gencode pairs and any platform override flags.
	NvccFlags []string
}
