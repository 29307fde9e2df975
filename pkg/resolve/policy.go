package resolve

import "github.com/confmend/confmend/pkg/types"

// Decision is the policy resolver's verdict for a non-duplicate pair.
type Decision int

const (
	// DecidePrompt defers the pair to the interactive prompt flow.
	DecidePrompt Decision = iota

	// DecideShowDiff displays the difference and touches nothing.
	DecideShowDiff

	// DecideKeepConf keeps the active file and removes the variant.
	DecideKeepConf

	// DecideTakeOther replaces the active file's content with the
	// variant's content, then removes the variant.
	DecideTakeOther
)

func (d Decision) String() string {
	switch d {
	case DecidePrompt:
		return "prompt"
	case DecideShowDiff:
		return "show-diff"
	case DecideKeepConf:
		return "keep-conf"
	case DecideTakeOther:
		return "take-other"
	default:
		return "unknown"
	}
}

// Decide maps (pair kind, resolution mode) to a filesystem decision.
//
// "maintainer" always favors the package-supplied content and "user"
// always favors what was active before the upgrade. Which file that is
// depends on the pair kind: for rpmnew the maintainer's content sits in
// the variant, for rpmsave it is already the active file. The mapping is
// therefore deliberately inverted between the two kinds; flattening it
// into something symmetric silently swaps user and maintainer outcomes.
func Decide(kind types.PairKind, mode types.ResolutionMode) Decision {
	switch mode {
	case types.ModeDiff:
		return DecideShowDiff
	case types.ModeMaintainer:
		if kind == types.PairRpmnew {
			return DecideTakeOther
		}
		return DecideKeepConf
	case types.ModeUser:
		if kind == types.PairRpmnew {
			return DecideKeepConf
		}
		return DecideTakeOther
	default:
		return DecidePrompt
	}
}

// DiffOrder returns the (from, to) argument order for diff display. For
// rpmnew pairs the diff reads current -> new; for rpmsave pairs it reads
// saved -> current, matching how the change would be applied.
func DiffOrder(pair types.FileVariantPair) (from, to string) {
	if pair.Kind == types.PairRpmnew {
		return pair.ConfFile, pair.OtherFile
	}
	return pair.OtherFile, pair.ConfFile
}
