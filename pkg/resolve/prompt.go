package resolve

import (
	"fmt"

	"github.com/confmend/confmend/pkg/types"
)

// Choice is a human decision for a single pair. The choices speak about
// the current file and the variant directly, so no kind asymmetry leaks
// into the prompt flow.
type Choice int

const (
	// ChoiceKeepCurrent keeps the active file, the variant is removed.
	ChoiceKeepCurrent Choice = iota

	// ChoiceTakeOther adopts the variant's content into the active slot.
	ChoiceTakeOther

	// ChoiceShowDiff displays the difference, then asks again.
	ChoiceShowDiff

	// ChoiceMerge hands both files to the external merge frontend.
	ChoiceMerge

	// ChoiceSkip leaves the pair untouched for a later session.
	ChoiceSkip
)

// Prompter asks a human what to do with a pair. Implementations own the
// terminal for the duration of the call.
type Prompter interface {
	Choose(pair types.FileVariantPair) (Choice, error)
}

// DiffRenderer renders a textual difference between two files to the
// interactive frontend. It makes no filesystem change.
type DiffRenderer interface {
	ShowDiff(from, to string) error
}

// Merger drives an external merge tool on the two files. A successful
// merge leaves the result in the pair's active slot; the variant's fate
// is the merger's responsibility.
type Merger interface {
	Merge(conf, other string) error
}

// StopError is a benign early-termination signal raised inside a run.
// The session controller downgrades it to a debug log instead of a
// failure.
type StopError struct {
	Reason types.StopReason
}

func (e *StopError) Error() string {
	return fmt.Sprintf("resolution stopped: %s", e.Reason)
}

// ExitError is an unrecognized termination code from a frontend or merge
// tool. Unlike StopError it propagates as a session failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("frontend exited with code %d", e.Code)
}
