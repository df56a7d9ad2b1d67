package buildsys

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OverrideName is the optional package-supplied manifest read from the
// source tree root. When present it pins the build system and supplies
// base flags.
const OverrideName = "aurora.json"

// Override mirrors the manifest's JSON shape.
type Override struct {
	BuildSystem string   `json:"build_system"`
	Flags       []string `json:"flags"`
}

// ManifestError reports an unusable override manifest. It is fatal for the
// package attempt; a malformed manifest is never silently ignored.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// readOverride loads the override manifest from dir.
// Returns (nil, nil) when no manifest exists.
func readOverride(dir string) (*Override, error) {
	path := filepath.Join(dir, OverrideName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ManifestError{Path: path, Err: err}
	}
	var o Override
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	return &o, nil
}
