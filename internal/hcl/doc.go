// Package hcl provides the concrete HCL implementation of the manifest
// Loader interface defined in the `config` package. It is responsible for
// file parsing, expression evaluation and HCL-to-model translation.
package hcl
