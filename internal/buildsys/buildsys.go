// Package buildsys classifies source trees against the supported build
// systems and drives their canonical build and artifact-lookup sequences.
package buildsys

import (
	"context"
	"os"
	"path/filepath"
)

// Kind identifies one of the supported build systems.
type Kind int

const (
	Make Kind = iota
	Autotools
	Cargo
	CMake
	Meson
	Ninja
	Nimble
	Stack
)

// makefileNames are the Make-family marker files, checked in order.
var makefileNames = []string{"Makefile", "makefile", "GNUMakefile"}

// system is the capability record for one build system: how to recognize
// it, how to invoke it and where its artifact lands.
type system struct {
	name    string   // canonical lowercase name, also the override manifest value
	label   string   // build file label shown at the confirmation gate
	markers []string // literal marker file names
	glob    string   // optional glob marker pattern
	steps   []string // human-readable sketch of the invocation recipe
	invoke  func(ctx context.Context, r Runner, plan Plan) error
	locate  func(sourceDir, bin string) (string, bool)
}

// systems is indexed by Kind.
var systems = [...]system{
	Make: {
		name:    "make",
		label:   "Makefile",
		markers: makefileNames,
		steps:   []string{"make -f <makefile> <flags>"},
		invoke:  invokeMake,
		locate:  locateRoot,
	},
	Autotools: {
		name:    "autotools",
		label:   "configure",
		markers: []string{"configure"},
		steps:   []string{"./configure <flags>", "make"},
		invoke:  invokeAutotools,
		locate:  locateRoot,
	},
	Cargo: {
		name:    "cargo",
		label:   "Cargo.toml",
		markers: []string{"Cargo.toml"},
		steps:   []string{"cargo build --release <flags>"},
		invoke:  invokeCargo,
		locate:  locateCargo,
	},
	CMake: {
		name:    "cmake",
		label:   "CMakeLists.txt",
		markers: []string{"CMakeLists.txt"},
		steps:   []string{"cmake -DCMAKE_BUILD_TYPE=Release <flags> ..", "cmake <flags> ..  (retry on failure)"},
		invoke:  invokeCMake,
		locate:  locateCMake,
	},
	Meson: {
		name:    "meson",
		label:   "meson.build",
		markers: []string{"meson.build"},
		steps:   []string{"meson setup <flags> build", "meson build  (retry on failure)", "ninja -C build"},
		invoke:  invokeMeson,
		locate:  locateMeson,
	},
	Ninja: {
		name:    "ninja",
		label:   "build.ninja",
		markers: []string{"build.ninja"},
		steps:   []string{"ninja <flags>"},
		invoke:  invokeNinja,
		locate:  locateRoot,
	},
	Nimble: {
		name:   "nimble",
		label:  "*.nimble",
		glob:   "*.nimble",
		steps:  []string{"nimble build <flags>"},
		invoke: invokeNimble,
		locate: locateRoot,
	},
	Stack: {
		name:    "stack",
		label:   "stack.yaml",
		markers: []string{"stack.yaml"},
		steps:   []string{"stack install <flags> --local-bin-path <src>/bin"},
		invoke:  invokeStack,
		locate:  locateStack,
	},
}

// detectOrder is the fixed marker priority. First match wins, which is the
// deliberate tie-break for trees carrying markers of several systems.
var detectOrder = []Kind{Make, Autotools, Cargo, CMake, Meson, Ninja, Nimble, Stack}

func (k Kind) String() string {
	if int(k) < len(systems) {
		return systems[k].name
	}
	return "unknown"
}

// Label returns the build file label used for human display.
func (k Kind) Label() string {
	return systems[k].label
}

// ParseKind resolves a lowercase build system name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k := range systems {
		if systems[k].name == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns all supported kinds in detection priority order.
func Kinds() []Kind {
	out := make([]Kind, len(detectOrder))
	copy(out, detectOrder)
	return out
}

// present reports whether the system's marker is in dir.
func (s *system) present(dir string) bool {
	for _, m := range s.markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true
		}
	}
	if s.glob != "" {
		if matches, err := filepath.Glob(filepath.Join(dir, s.glob)); err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

// Steps returns a human-readable sketch of the invocation recipe for k.
func (k Kind) Steps() []string {
	out := make([]string, len(systems[k].steps))
	copy(out, systems[k].steps)
	return out
}

// findMakefile returns the first existing Make-family file name in dir.
func findMakefile(dir string) string {
	for _, m := range makefileNames {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return m
		}
	}
	return "Makefile"
}
