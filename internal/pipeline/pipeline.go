// Package pipeline runs the per-package install sequence: fetch source,
// detect the build system, gate on confirmation, build, locate the artifact
// and copy it into the local bin directory. Each stage is a hard gate;
// a failure terminates only the current package's attempt.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/qiniu/x/log"

	"github.com/aurora-pm/aurora/internal/buildsys"
	"github.com/aurora-pm/aurora/internal/vcs"
	"github.com/aurora-pm/aurora/internal/workspace"
)

// Status is the caller-facing outcome class for one package.
type Status int

const (
	Installed Status = iota
	Cancelled
	NoBuildSystemFound
	CloneFailed
	BuildFailed
	BinaryNotFound
	CopyFailed
)

var statusNames = [...]string{
	Installed:          "installed",
	Cancelled:          "cancelled",
	NoBuildSystemFound: "no build system found",
	CloneFailed:        "clone failed",
	BuildFailed:        "build failed",
	BinaryNotFound:     "binary not found",
	CopyFailed:         "copy failed",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Request describes one package to install. A batch is a sequence of
// independent requests; they share nothing but the workspace root.
type Request struct {
	Name        string   // package identifier, may contain slashes
	Ref         string   // branch or tag; "latest" resolves the newest semver tag
	CallerFlags []string // appended after any manifest-supplied flags
	AutoConfirm bool     // skip the confirmation gate
}

// Outcome reports what happened to one package.
type Outcome struct {
	Package string
	Status  Status
	Path    string        // install destination when Status == Installed
	Stage   string        // failing build stage when Status == BuildFailed
	Elapsed time.Duration
	Err     error
}

// Gate obtains a proceed/cancel decision before a build runs.
// A declined gate is a normal abort, not an error.
type Gate interface {
	Confirm(pkg, label, path string) (bool, error)
}

// GateFunc adapts a function to Gate.
type GateFunc func(pkg, label, path string) (bool, error)

func (f GateFunc) Confirm(pkg, label, path string) (bool, error) {
	return f(pkg, label, path)
}

// Pipeline drives the install sequence. Packages are processed strictly
// one at a time.
type Pipeline struct {
	ws     *workspace.Workspace
	vcs    vcs.VCS
	gate   Gate
	runner buildsys.Runner
	binDir string
	host   string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithGate installs a confirmation gate. Without one every build proceeds.
func WithGate(g Gate) Option {
	return func(p *Pipeline) { p.gate = g }
}

// WithRunner replaces the subprocess runner for build steps.
func WithRunner(r buildsys.Runner) Option {
	return func(p *Pipeline) { p.runner = r }
}

// New creates a Pipeline installing into binDir, cloning from host.
func New(ws *workspace.Workspace, v vcs.VCS, binDir, host string, opts ...Option) *Pipeline {
	p := &Pipeline{
		ws:     ws,
		vcs:    v,
		runner: &buildsys.ExecRunner{},
		binDir: binDir,
		host:   host,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// InstallAll processes each request to completion before starting the next.
func (p *Pipeline) InstallAll(ctx context.Context, reqs []Request) []Outcome {
	outcomes := make([]Outcome, 0, len(reqs))
	for _, req := range reqs {
		outcomes = append(outcomes, p.Install(ctx, req))
	}
	return outcomes
}

// Install runs the full sequence for one package.
func (p *Pipeline) Install(ctx context.Context, req Request) Outcome {
	start := time.Now()
	out := Outcome{Package: req.Name}
	fail := func(s Status, err error) Outcome {
		out.Status = s
		out.Err = err
		out.Elapsed = time.Since(start)
		return out
	}

	dir, err := p.fetch(ctx, req)
	if err != nil {
		return fail(CloneFailed, err)
	}

	plan, err := buildsys.Detect(dir, req.CallerFlags)
	if err != nil {
		return fail(NoBuildSystemFound, err)
	}
	log.Infof("build system for %s: %s", req.Name, plan.Kind)

	if !req.AutoConfirm && p.gate != nil {
		if label, file, ok := buildsys.BuildFile(plan); ok {
			proceed, err := p.gate.Confirm(req.Name, label, file)
			if err != nil {
				return fail(Cancelled, err)
			}
			if !proceed {
				log.Infof("build of %s cancelled by user", req.Name)
				return fail(Cancelled, nil)
			}
		}
	}

	log.Infof("building %s with flags %q", req.Name, plan.ExtraFlags)
	if err := buildsys.Invoke(ctx, p.runner, plan); err != nil {
		var step *buildsys.StepError
		if errors.As(err, &step) {
			out.Stage = step.Stage
		}
		return fail(BuildFailed, err)
	}

	artifact, err := buildsys.Locate(plan, path.Base(req.Name))
	if err != nil {
		return fail(BinaryNotFound, err)
	}

	dest, err := installArtifact(artifact, p.binDir)
	if err != nil {
		return fail(CopyFailed, err)
	}

	out.Status = Installed
	out.Path = dest
	out.Elapsed = time.Since(start)
	return out
}

// fetch purges any stale checkout and clones the package source.
func (p *Pipeline) fetch(ctx context.Context, req Request) (string, error) {
	if err := p.ws.Prepare(); err != nil {
		return "", err
	}
	dir, err := p.ws.Reset(req.Name)
	if err != nil {
		return "", err
	}

	remote := fmt.Sprintf("https://%s/%s.git", p.host, req.Name)
	ref := req.Ref
	if ref == "latest" {
		tag, err := vcs.LatestTag(ctx, p.vcs, remote)
		if err != nil {
			return "", err
		}
		ref = tag // "" falls back to the default branch
	}

	log.Infof("cloning %s", remote)
	if err := p.vcs.Clone(ctx, remote, ref, dir); err != nil {
		return "", err
	}
	return dir, nil
}
