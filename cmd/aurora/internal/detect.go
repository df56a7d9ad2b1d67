package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aurora-pm/aurora/internal/buildsys"
)

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Classify a local source tree",
	Long:  `Detect inspects a source tree, reports which build system it uses and the command sequence a build would run. No build is performed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	plan, err := buildsys.Detect(dir, nil)
	if err != nil {
		return err
	}

	fmt.Printf("build system: %s\n", plan.Kind)
	if label, path, ok := buildsys.BuildFile(plan); ok {
		fmt.Printf("build file:   %s (%s)\n", label, path)
	} else {
		fmt.Printf("build file:   pinned by %s\n", buildsys.OverrideName)
	}
	if len(plan.ExtraFlags) > 0 {
		fmt.Printf("base flags:   %q\n", plan.ExtraFlags)
	}
	fmt.Println("steps:")
	for _, s := range plan.Kind.Steps() {
		fmt.Printf("  %s\n", s)
	}
	return nil
}
