// Package workspace owns the scratch directory tree used for per-package
// source checkouts. The layout matches the tool's historical one:
//
//	<root>/
//	  builds/
//	    <package>/   # destructively recreated for every attempt
package workspace

import (
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/mod/module"
)

const buildsDir = "builds"

// Workspace manages a scratch directory tree under a single root.
type Workspace struct {
	root string
}

// New returns a Workspace rooted at root. The tree is not touched
// until Prepare is called.
func New(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Prepare ensures the workspace root and its builds subdirectory exist.
func (w *Workspace) Prepare() error {
	return os.MkdirAll(filepath.Join(w.root, buildsDir), 0o755)
}

// BuildDir returns the per-package checkout directory for pkg.
// The name is escaped to a single directory level; distinct packages
// never map to the same checkout.
func (w *Workspace) BuildDir(pkg string) string {
	return filepath.Join(w.root, buildsDir, escapePackage(pkg))
}

// escapePackage turns a package identifier into one filesystem-safe path
// element. Module-style names go through the module escaping scheme first
// so case-only differences stay distinct on case-insensitive filesystems;
// percent-escaping then folds the remaining slashes. Both steps are
// injective, and names the module scheme rejects (for example a bare
// "yay") are percent-escaped as-is.
func escapePackage(pkg string) string {
	if escaped, err := module.EscapePath(pkg); err == nil {
		pkg = escaped
	}
	return url.PathEscape(pkg)
}

// Reset removes any stale checkout for pkg and returns the directory
// a fresh fetch should populate. The directory itself is not recreated;
// cloning creates it.
func (w *Workspace) Reset(pkg string) (string, error) {
	dir := w.BuildDir(pkg)
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	return dir, nil
}
