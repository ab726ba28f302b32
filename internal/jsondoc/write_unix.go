//go:build !windows

package jsondoc

import "github.com/google/renameio/v2"

// writeFile replaces path atomically: temp file, fsync, rename.
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0644) //nolint:gosec // documents need to be readable
}
