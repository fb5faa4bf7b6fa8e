// Package interactive provides the survey-based terminal menus.
package interactive

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption is one selectable menu item with its action.
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

// ErrExit is returned when the user chooses to exit the menu.
var ErrExit = errors.New("exit")

// ShowMenu displays the options plus an Exit entry and runs the selected
// action. Aborting the prompt counts as Exit.
func ShowMenu(options []MenuOption) error {
	names := make([]string, 0, len(options)+1)
	for _, opt := range options {
		names = append(names, opt.Name)
	}

	names = append(names, "Exit")

	var idx int

	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: names,
		Description: func(_ string, index int) string {
			if index < len(options) {
				return options[index].Description
			}

			return ""
		},
	}

	if err := survey.AskOne(prompt, &idx); err != nil {
		return ErrExit
	}

	if idx >= len(options) {
		return ErrExit
	}

	return options[idx].Action()
}

// Choose prompts for one of the given values.
func Choose(message string, values []string) (string, error) {
	var selected string

	prompt := &survey.Select{
		Message: message,
		Options: values,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", ErrExit
	}

	return selected, nil
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}

	_ = survey.AskOne(prompt, &confirmed)

	return confirmed
}
