package prompt

import (
	"fmt"

	"github.com/amterp/nids/internal/util"
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter using the charmbracelet/huh library.
type HuhPrompter struct{}

// NewHuhPrompter creates a new huh-based prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var result string

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, opt)
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()

	return result, err
}

func (p *HuhPrompter) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	result := defaultValue

	input := huh.NewInput().
		Title(title).
		Value(&result)
	if validate != nil {
		input = input.Validate(validate)
	}

	err := input.Run()
	return result, err
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	result := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Value(&result).
		Run()

	return result, err
}

func (p *HuhPrompter) NamedID(title string, maxID int) (string, int16, error) {
	var name, idText string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(ValidateName),
			huh.NewInput().
				Title("ID").
				Description(fmt.Sprintf("1 to %d", maxID)).
				Value(&idText).
				Validate(IDValidator(maxID)),
		).Title(title),
	)
	if err := form.Run(); err != nil {
		return "", 0, err
	}

	id, err := ParseID(idText, maxID)
	if err != nil {
		return "", 0, err
	}
	return util.NormalizeName(name), id, nil
}
