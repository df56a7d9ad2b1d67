package pipeline

import (
	"io"
	"os"
	"path/filepath"
)

// installArtifact copies the built executable into binDir, preserving its
// filename and mode. An existing file of the same name is overwritten.
func installArtifact(artifact, binDir string) (string, error) {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", err
	}

	src, err := os.Open(artifact)
	if err != nil {
		return "", err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", err
	}
	mode := info.Mode().Perm() | 0o111

	dest := filepath.Join(binDir, filepath.Base(artifact))
	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return dest, nil
}
