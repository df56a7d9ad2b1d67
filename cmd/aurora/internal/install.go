package internal

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aurora-pm/aurora/internal/config"
	"github.com/aurora-pm/aurora/internal/pipeline"
	"github.com/aurora-pm/aurora/internal/vcs"
	"github.com/aurora-pm/aurora/internal/workspace"
)

var (
	installYes   bool
	installFlags []string
	installHost  string
)

var installCmd = &cobra.Command{
	Use:   "install package[@ref] [package[@ref]...]",
	Short: "Build packages from source and install them",
	Long: `Install clones each package's repository, detects its build system,
builds it and copies the produced executable into your local bin directory.
A failing package does not stop the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip the build confirmation prompt")
	installCmd.Flags().StringArrayVar(&installFlags, "flag", nil, "Extra flag passed to the build (repeatable)")
	installCmd.Flags().StringVar(&installHost, "host", "", "Clone host overriding the configured one")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	host := cfg.Host
	if installHost != "" {
		host = installHost
	}

	ws := workspace.New(cfg.WorkDir)
	unlock, err := ws.Lock()
	if err != nil {
		return fmt.Errorf("lock workspace: %w", err)
	}
	defer unlock()

	p := pipeline.New(ws, vcs.NewGitVCS(), cfg.BinDir, host,
		pipeline.WithGate(promptGate{}))

	reqs := make([]pipeline.Request, 0, len(args))
	for _, arg := range args {
		name, ref := parsePackageArg(arg)
		reqs = append(reqs, pipeline.Request{
			Name:        name,
			Ref:         ref,
			CallerFlags: installFlags,
			AutoConfirm: installYes,
		})
	}

	failed := 0
	for _, out := range p.InstallAll(context.Background(), reqs) {
		report(out)
		if out.Status != pipeline.Installed && out.Status != pipeline.Cancelled {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed", failed, len(args))
	}
	return nil
}

// parsePackageArg splits "name@ref" on the last '@'. ref may be empty.
func parsePackageArg(arg string) (name, ref string) {
	for i := len(arg) - 1; i >= 0; i-- {
		if arg[i] == '@' {
			return arg[:i], arg[i+1:]
		}
	}
	return arg, ""
}

func report(out pipeline.Outcome) {
	switch out.Status {
	case pipeline.Installed:
		color.Green("~> %s installed to %s in %ds", out.Package, out.Path, int(out.Elapsed.Seconds()))
		fmt.Println("Make sure this directory is in your PATH.")
	case pipeline.Cancelled:
		color.Yellow("~> %s: build cancelled by user", out.Package)
	case pipeline.BuildFailed:
		color.Red("~> %s: %s at stage %s: %v", out.Package, out.Status, out.Stage, out.Err)
	default:
		color.Red("~> %s: %s: %v", out.Package, out.Status, out.Err)
	}
}
