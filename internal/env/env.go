package env

import (
	"os"
	"path/filepath"
)

// WorkDir returns the default workspace root holding per-package
// source checkouts.
func WorkDir() string {
	return filepath.Join(os.TempDir(), "aurora")
}

// BinDir returns the default install destination for built executables.
func BinDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// ConfigDir returns the directory searched for the tool configuration file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aurora"), nil
}
