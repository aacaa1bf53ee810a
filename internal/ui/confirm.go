package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmReuse asks whether files may be written into the existing
// directory at path. It defaults to no.
func ConfirmReuse(path string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Write the project into it?", path)).
		Description("Files from the template overwrite files of the same name.").
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("asking for confirmation: %w", err)
	}
	return ok, nil
}
