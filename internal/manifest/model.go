// Package manifest reconciles the tool's own dependency entry into a
// project's package.json while preserving the order of existing entries.
package manifest

import "strings"

// Filename is the project manifest at the workspace root.
const Filename = "package.json"

// Dependency tables managed in the manifest.
const (
	DependenciesKey    = "dependencies"
	DevDependenciesKey = "devDependencies"
)

// DependencySpec describes the entry that must appear for the tool's own package.
type DependencySpec struct {
	Name    string
	Version string
	Exact   bool
}

// Specifier returns the version string written to the manifest: the bare
// version when Exact is set, a caret range otherwise.
func (s DependencySpec) Specifier() string {
	v := strings.TrimPrefix(s.Version, "v")
	if s.Exact {
		return v
	}
	return "^" + v
}
