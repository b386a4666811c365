// Package interactive provides terminal prompts for destructive operations.
package interactive

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks the operator to confirm an operation. It returns false
// without error when the operator declines. When stdin is not a terminal the
// prompt cannot be answered, so Confirm fails and the caller should require
// an explicit --yes instead.
func Confirm(label string) (bool, error) {
	if !IsTerminal() {
		return false, fmt.Errorf("cannot prompt for confirmation without a terminal (use --yes)")
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
