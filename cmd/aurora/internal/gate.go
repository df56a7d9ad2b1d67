package internal

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// promptGate asks the operator to confirm a build after showing which
// build file drove the detection.
type promptGate struct{}

func (promptGate) Confirm(pkg, label, path string) (bool, error) {
	fmt.Printf("~> build file: %s (%s)\n", label, path)
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Proceed with build of %s", pkg),
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
