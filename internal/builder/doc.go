/*
Package builder assembles the native extension targets. It acts as the
bridge between the static manifest model (defined in the 'config'
package) and the build-graph emission layer (the 'driver' package).

The primary artifact produced by this package is a fully resolved list of
*config.Target descriptors.

Target assembly is a two-phase process:

 1. Source Resolution: for each extension the builder merges the optional
    explicit entry point with the sources discovered under the
    extension's source roots. Discovery is the only I/O this package
    performs, and it is delegated entirely to the 'fsutil' package.

 2. Argument Resolution: the host-compiler arguments are copied verbatim
    from the manifest; the device-compiler arguments are the manifest's
    nvcc arguments followed by the resolved architecture flags. Every
    list is freshly allocated, so mutating one target never affects
    another.

Assembly is a pure, deterministic transformation of the manifest and the
filesystem state at call time. It performs no validation of the argument
tokens themselves; they are passed through opaquely to the driver.
*/
package builder
