package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/resolve"
	"github.com/confmend/confmend/pkg/types"
)

// HuhPrompter asks the per-pair question with a terminal select form.
// It owns stdin/stdout for the duration of each Choose call.
type HuhPrompter struct{}

// NewPrompter returns the built-in terminal prompter.
func NewPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Choose presents the resolution choices for one pair.
func (p *HuhPrompter) Choose(pair types.FileVariantPair) (resolve.Choice, error) {
	takeLabel := "Restore the saved version"
	if pair.Kind == types.PairRpmnew {
		takeLabel = "Install the maintainer's version"
	}

	choice := resolve.ChoiceShowDiff
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[resolve.Choice]().
				Title(fmt.Sprintf("%s differs from %s", pair.ConfFile, pair.OtherFile)).
				Description(fmt.Sprintf("package: %s", pair.Package)).
				Options(
					huh.NewOption("Keep the currently-installed version", resolve.ChoiceKeepCurrent),
					huh.NewOption(takeLabel, resolve.ChoiceTakeOther),
					huh.NewOption("Show the differences again", resolve.ChoiceShowDiff),
					huh.NewOption("Merge with an external tool", resolve.ChoiceMerge),
					huh.NewOption("Skip for now", resolve.ChoiceSkip),
				).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		return choice, errors.Wrap(err, errors.ErrPromptFailed, "selection form failed")
	}
	return choice, nil
}
