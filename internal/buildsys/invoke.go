package buildsys

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes a single external build step in dir.
// The step's exit status is the sole success signal; output is never parsed.
type Runner interface {
	Run(ctx context.Context, name string, args []string, dir string) error
}

// ExecRunner runs build steps as subprocesses. Step stdout is discarded;
// stderr is passed through uninspected so diagnostics reach the operator.
type ExecRunner struct {
	Stderr io.Writer // defaults to os.Stderr
}

func (e *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// StepError reports a failed build step, tagged with the stage that failed.
// The stage matters to operators: a configure failure usually means missing
// dependencies while later stages mean compile errors.
type StepError struct {
	Stage string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Invoke runs the canonical build sequence for the plan's kind.
// The first failing step aborts the rest and is reported as a StepError,
// except for the designed one-shot fallbacks (CMake without the build-type
// define, Meson's simplified setup form).
func Invoke(ctx context.Context, r Runner, plan Plan) error {
	return systems[plan.Kind].invoke(ctx, r, plan)
}

func step(ctx context.Context, r Runner, stage, name string, args []string, dir string) error {
	if err := r.Run(ctx, name, args, dir); err != nil {
		return &StepError{Stage: stage, Err: err}
	}
	return nil
}

func invokeMake(ctx context.Context, r Runner, plan Plan) error {
	args := append([]string{"-f", findMakefile(plan.SourceDir)}, plan.ExtraFlags...)
	return step(ctx, r, "make", "make", args, plan.SourceDir)
}

func invokeAutotools(ctx context.Context, r Runner, plan Plan) error {
	if err := step(ctx, r, "configure", "./configure", plan.ExtraFlags, plan.SourceDir); err != nil {
		return err
	}
	return step(ctx, r, "make", "make", nil, plan.SourceDir)
}

func invokeCargo(ctx context.Context, r Runner, plan Plan) error {
	args := append([]string{"build", "--release"}, plan.ExtraFlags...)
	args = append(args,
		"--manifest-path", filepath.Join(plan.SourceDir, "Cargo.toml"),
		"--target-dir", filepath.Join(plan.SourceDir, "target"),
	)
	return step(ctx, r, "cargo", "cargo", args, plan.SourceDir)
}

func invokeCMake(ctx context.Context, r Runner, plan Plan) error {
	buildDir := filepath.Join(plan.SourceDir, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return &StepError{Stage: "cmake", Err: err}
	}
	args := append([]string{"-DCMAKE_BUILD_TYPE=Release"}, plan.ExtraFlags...)
	args = append(args, "..")
	if err := r.Run(ctx, "cmake", args, buildDir); err == nil {
		return nil
	}
	// Some trees reject the Release build type; retry once without it.
	args = append(append([]string{}, plan.ExtraFlags...), "..")
	return step(ctx, r, "cmake", "cmake", args, buildDir)
}

func invokeMeson(ctx context.Context, r Runner, plan Plan) error {
	if err := os.MkdirAll(filepath.Join(plan.SourceDir, "build"), 0o755); err != nil {
		return &StepError{Stage: "meson-setup", Err: err}
	}
	args := append([]string{"setup"}, plan.ExtraFlags...)
	args = append(args, "build")
	if err := r.Run(ctx, "meson", args, plan.SourceDir); err != nil {
		// Older meson lacks the setup subcommand; try the simple form once.
		// Ninja is the final failure signal either way.
		_ = r.Run(ctx, "meson", []string{"build"}, plan.SourceDir)
	}
	return step(ctx, r, "ninja", "ninja", []string{"-C", "build"}, plan.SourceDir)
}

func invokeNinja(ctx context.Context, r Runner, plan Plan) error {
	return step(ctx, r, "ninja", "ninja", plan.ExtraFlags, plan.SourceDir)
}

func invokeNimble(ctx context.Context, r Runner, plan Plan) error {
	args := append([]string{"build"}, plan.ExtraFlags...)
	return step(ctx, r, "nimble", "nimble", args, plan.SourceDir)
}

func invokeStack(ctx context.Context, r Runner, plan Plan) error {
	args := append([]string{"install"}, plan.ExtraFlags...)
	args = append(args, "--local-bin-path", filepath.Join(plan.SourceDir, "bin"))
	return step(ctx, r, "stack", "stack", args, plan.SourceDir)
}
