package types

// PairKind identifies which side of a file-variant pair the package
// manager supplied.
type PairKind string

const (
	// PairRpmnew means the other file is a maintainer-provided
	// replacement for a locally edited configuration file.
	PairRpmnew PairKind = "rpmnew"

	// PairRpmsave means the other file is the previously active
	// configuration, saved aside when the package overwrote it. This
	// also covers .rpmorig variants, which carry the same semantics.
	PairRpmsave PairKind = "rpmsave"
)

// ResolutionMode selects how non-duplicate pairs are resolved.
type ResolutionMode string

const (
	// ModeUnset defers every pair to the interactive prompt flow.
	ModeUnset ResolutionMode = ""

	// ModeDiff displays differences and leaves the filesystem untouched.
	ModeDiff ResolutionMode = "diff"

	// ModeMaintainer always keeps the package maintainer's version.
	ModeMaintainer ResolutionMode = "maintainer"

	// ModeUser always keeps the version the user had active.
	ModeUser ResolutionMode = "user"
)

// ParseResolutionMode validates a configured mode value. Anything outside
// the closed set degrades to ModeUnset rather than failing the session.
func ParseResolutionMode(s string) ResolutionMode {
	switch ResolutionMode(s) {
	case ModeDiff, ModeMaintainer, ModeUser:
		return ResolutionMode(s)
	default:
		return ModeUnset
	}
}

// FileVariantPair is an ordered pair of paths competing for the same
// configuration slot: the currently active file and a suffixed variant.
type FileVariantPair struct {
	// Package is the name of the package the pair belongs to.
	Package string

	// ConfFile is the currently active configuration file.
	ConfFile string

	// OtherFile is the competing variant (.rpmnew, .rpmsave or .rpmorig).
	OtherFile string

	// Kind says which side the maintainer's content is on.
	Kind PairKind
}

// RunContext aggregates everything a resolution session needs. It is
// built once per package-manager transaction and discarded afterwards.
type RunContext struct {
	// Packages queued for review, in transaction discovery order.
	// Duplicates are permitted and preserved.
	Packages []string

	// Frontend is an opaque identifier passed through to the
	// interactive frontend. Empty means the built-in prompt.
	Frontend string

	// Mode is the resolution policy for this session.
	Mode ResolutionMode

	// Interactive reports whether stdin is a usable terminal and no
	// assume-yes/assume-no flag forces unattended behavior.
	Interactive bool
}

// RunStatus classifies how a resolution run ended.
type RunStatus int

const (
	// RunCompleted means every discovered pair was processed.
	RunCompleted RunStatus = iota

	// RunSkipped means the session decided not to start at all.
	RunSkipped

	// RunBenignStop means the run stopped early for a known, harmless
	// reason that must not surface as a failure.
	RunBenignStop

	// RunFatal means the run stopped with an unrecognized code that
	// must propagate to the host.
	RunFatal
)

func (s RunStatus) String() string {
	switch s {
	case RunCompleted:
		return "completed"
	case RunSkipped:
		return "skipped"
	case RunBenignStop:
		return "benign-stop"
	case RunFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// StopReason names the recognized benign early-termination causes.
type StopReason string

const (
	// StopMissingMergeTool: an interactive merge was requested but no
	// decision variable (MERGE) names a merge tool.
	StopMissingMergeTool StopReason = "missing-merge-tool"

	// StopFileVanished: a file referenced by the run was removed by a
	// third party mid-run.
	StopFileVanished StopReason = "file-vanished"
)

// PairAction records what the engine did to a pair.
type PairAction string

const (
	ActionNone        PairAction = "none"
	ActionRemovedDup  PairAction = "removed duplicate"
	ActionKeptCurrent PairAction = "kept current"
	ActionTookOther   PairAction = "took variant"
	ActionShowedDiff  PairAction = "showed diff"
	ActionMerged      PairAction = "merged"
	ActionSkipped     PairAction = "skipped"
)

// PairOutcome is the per-pair entry of a run's result, used for the
// end-of-session summary and for error isolation reporting.
type PairOutcome struct {
	Pair   FileVariantPair
	Action PairAction
	Err    error
}

// RunResult is returned from a resolution run and inspected exactly once
// by the session controller.
type RunResult struct {
	Status   RunStatus
	Reason   StopReason // set when Status == RunBenignStop
	Code     int        // set when Status == RunFatal
	Outcomes []PairOutcome
}

// Failed reports whether any pair ended with an error.
func (r *RunResult) Failed() []PairOutcome {
	var failed []PairOutcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
