package buildsys

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// cargoManifest is the slice of Cargo.toml we care about: an optional list
// of [[bin]] tables and the [package] name as fallback.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// cargoBinaryName resolves the artifact name a cargo build produces:
// the first declared [[bin]] name, else the package name.
func cargoBinaryName(sourceDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(sourceDir, "Cargo.toml"))
	if err != nil {
		return "", false
	}
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", false
	}
	for _, b := range m.Bin {
		if b.Name != "" {
			return b.Name, true
		}
	}
	if m.Package.Name != "" {
		return m.Package.Name, true
	}
	return "", false
}
