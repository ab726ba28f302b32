package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/farfromrefug/lerna-lite/internal/jsondoc"
	"github.com/farfromrefug/lerna-lite/internal/manifest"
	"github.com/farfromrefug/lerna-lite/internal/toolconfig"
)

// PackagesDir is the conventional folder for workspace packages.
const PackagesDir = "packages"

// Context holds the resolved paths and loaded documents for a workspace.
type Context struct {
	Root         string
	ManifestPath string
	ConfigPath   string
	PackagesPath string

	Manifest *jsondoc.Object
	Config   *jsondoc.Object

	// Whether each document existed on disk when loaded.
	ManifestExisted bool
	ConfigExisted   bool
}

// Load resolves workspace paths and loads package.json and lerna.json.
// Missing documents are loaded as empty objects.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	ctx := &Context{
		Root:         root,
		ManifestPath: filepath.Join(root, manifest.Filename),
		ConfigPath:   filepath.Join(root, toolconfig.Filename),
		PackagesPath: filepath.Join(root, PackagesDir),
	}

	ctx.Manifest, ctx.ManifestExisted, err = manifest.Load(ctx.ManifestPath)
	if err != nil {
		return nil, err
	}
	ctx.Config, ctx.ConfigExisted, err = toolconfig.Load(ctx.ConfigPath)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// Reconcile merges the tool's dependency into package.json and its settings
// into lerna.json. Both documents are updated in place.
func (c *Context) Reconcile(spec manifest.DependencySpec, opts toolconfig.Options) {
	c.Manifest = manifest.MergeDependency(c.Manifest, spec)
	c.Config = toolconfig.Merge(c.Config, opts)
}

// Save writes package.json and then lerna.json, creating the root if needed.
func (c *Context) Save() error {
	if err := os.MkdirAll(c.Root, 0755); err != nil { //nolint:gosec // workspace dir needs to be world-readable
		return fmt.Errorf("creating workspace directory: %w", err)
	}
	if err := manifest.Save(c.ManifestPath, c.Manifest); err != nil {
		return err
	}
	return toolconfig.Save(c.ConfigPath, c.Config)
}

// EnsurePackagesDir creates the packages folder if needed and reports
// whether it was created.
func (c *Context) EnsurePackagesDir() (created bool, err error) {
	info, err := os.Stat(c.PackagesPath)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%s exists and is not a directory", c.PackagesPath)
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking packages directory: %w", err)
	}
	if err := os.MkdirAll(c.PackagesPath, 0755); err != nil { //nolint:gosec // packages dir needs to be world-readable
		return false, fmt.Errorf("creating packages directory: %w", err)
	}
	return true, nil
}
