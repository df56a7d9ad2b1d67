package buildsys

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound reports that no recognized build system marker is present.
var ErrNotFound = errors.New("no build system found")

// Plan is the resolved, immutable decision of which build system and flags
// to use for one package attempt.
type Plan struct {
	Kind         Kind
	ExtraFlags   []string
	SourceDir    string
	FromManifest bool
}

// Detect classifies the source tree at sourceDir.
//
// An override manifest naming a recognized build system wins over marker
// detection, and its flags become the base of the flag sequence with
// callerFlags appended. Otherwise markers are tested in the fixed priority
// order and the first match wins. Detection only reads the filesystem.
func Detect(sourceDir string, callerFlags []string) (Plan, error) {
	override, err := readOverride(sourceDir)
	if err != nil {
		return Plan{}, err
	}

	var base []string
	if override != nil {
		base = override.Flags
		if override.BuildSystem != "" {
			kind, ok := ParseKind(override.BuildSystem)
			if !ok {
				return Plan{}, &ManifestError{
					Path: filepath.Join(sourceDir, OverrideName),
					Err:  fmt.Errorf("unknown build system %q", override.BuildSystem),
				}
			}
			return Plan{
				Kind:         kind,
				ExtraFlags:   mergeFlags(base, callerFlags),
				SourceDir:    sourceDir,
				FromManifest: true,
			}, nil
		}
	}

	for _, k := range detectOrder {
		if systems[k].present(sourceDir) {
			return Plan{
				Kind:       k,
				ExtraFlags: mergeFlags(base, callerFlags),
				SourceDir:  sourceDir,
			}, nil
		}
	}
	return Plan{}, ErrNotFound
}

// BuildFile resolves the build file to show at the confirmation gate.
// ok is false for manifest-pinned plans, where no single file drove the
// decision and the gate may be skipped.
func BuildFile(plan Plan) (label, path string, ok bool) {
	if plan.FromManifest {
		return "", "", false
	}
	sys := &systems[plan.Kind]
	switch {
	case plan.Kind == Make:
		name := findMakefile(plan.SourceDir)
		return name, filepath.Join(plan.SourceDir, name), true
	case sys.glob != "":
		matches, err := filepath.Glob(filepath.Join(plan.SourceDir, sys.glob))
		if err != nil || len(matches) == 0 {
			return "", "", false
		}
		return filepath.Base(matches[0]), matches[0], true
	default:
		return sys.label, filepath.Join(plan.SourceDir, sys.label), true
	}
}

// mergeFlags appends caller flags after manifest flags, preserving order.
func mergeFlags(base, caller []string) []string {
	if len(base) == 0 && len(caller) == 0 {
		return nil
	}
	out := make([]string, 0, len(base)+len(caller))
	out = append(out, base...)
	out = append(out, caller...)
	return out
}
