package buildsys

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrBinaryNotFound reports that a build succeeded but no artifact matching
// the package name exists in the kind's expected output layout. It usually
// means a naming-convention mismatch rather than a compile error.
var ErrBinaryNotFound = errors.New("built binary not found")

// Locate finds the executable produced by a successful build of plan.
// bin is the expected artifact name, normally the package's base name.
func Locate(plan Plan, bin string) (string, error) {
	if path, ok := systems[plan.Kind].locate(plan.SourceDir, bin); ok {
		return path, nil
	}
	return "", ErrBinaryNotFound
}

// locateRoot expects an executable named after the package at the source root.
func locateRoot(sourceDir, bin string) (string, bool) {
	return fileAt(filepath.Join(sourceDir, bin))
}

// locateCMake expects the artifact under the cmake build subdirectory.
func locateCMake(sourceDir, bin string) (string, bool) {
	return fileAt(filepath.Join(sourceDir, "build", bin))
}

// locateCargo prefers the name declared in Cargo.toml and searches the
// release output directory before the debug one.
func locateCargo(sourceDir, bin string) (string, bool) {
	name, ok := cargoBinaryName(sourceDir)
	if !ok {
		name = bin
	}
	for _, profile := range []string{"release", "debug"} {
		if path, ok := fileAt(filepath.Join(sourceDir, "target", profile, name)); ok {
			return path, true
		}
	}
	return "", false
}

// locateMeson searches the build subdirectory recursively.
func locateMeson(sourceDir, bin string) (string, bool) {
	return findIn(filepath.Join(sourceDir, "build"), bin)
}

// locateStack searches the local-bin output directory recursively.
func locateStack(sourceDir, bin string) (string, bool) {
	return findIn(filepath.Join(sourceDir, "bin"), bin)
}

func fileAt(path string) (string, bool) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// findIn walks dir depth-first and returns the first file exactly named bin.
// Sibling order is whatever the filesystem yields; callers must not rely
// on it when several matches exist.
func findIn(dir, bin string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if found, ok := findIn(path, bin); ok {
				return found, true
			}
		} else if entry.Name() == bin {
			return path, true
		}
	}
	return "", false
}
