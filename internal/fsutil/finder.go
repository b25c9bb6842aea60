// Package fsutil provides file system utility functions.
package fsutil

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
)

// CollectSources recursively searches the given root paths for regular
// files ending with the specified extension, skipping any file whose name
// starts with a dot. Results are concatenated root by root, in the order
// the roots were given; duplicates are not removed.
//
// A missing root contributes nothing and is reported as a warning, not an
// error. Any other walk failure (unreadable directory, I/O error) is
// returned to the caller.
func CollectSources(ctx context.Context, roots []string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, root := range roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			logger.Warn("Source root does not exist, contributing no files.", "root", root)
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if strings.HasSuffix(d.Name(), extension) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
