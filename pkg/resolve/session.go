package resolve

import (
	stderrors "errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/confmend/confmend/pkg/config"
	"github.com/confmend/confmend/pkg/discovery"
	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/logging"
	"github.com/confmend/confmend/pkg/types"
)

// Session orchestrates one resolution run across a batch of tracked
// packages. Sessions are single-use: build one per package-manager
// transaction and discard it afterwards.
type Session struct {
	cfg      config.SessionConfig
	fs       types.FS
	lister   discovery.VariantLister
	executor *Executor
	prompter Prompter
	differ   DiffRenderer
	merger   Merger
	logger   zerolog.Logger
}

// NewSession wires a session from its collaborators. prompter may be nil
// for sessions that can never reach the interactive path; the entry
// condition in Run prevents an unset-mode session from starting without
// a terminal.
func NewSession(cfg config.SessionConfig, fsys types.FS, lister discovery.VariantLister, prompter Prompter, differ DiffRenderer, merger Merger) *Session {
	return &Session{
		cfg:      cfg,
		fs:       fsys,
		lister:   lister,
		executor: NewExecutor(fsys),
		prompter: prompter,
		differ:   differ,
		merger:   merger,
		logger:   logging.GetLogger("resolve.session"),
	}
}

// Context returns the run context this session was built for.
func (s *Session) Context() types.RunContext {
	return types.RunContext{
		Packages:    s.cfg.Packages,
		Frontend:    s.cfg.Frontend,
		Mode:        s.cfg.Mode,
		Interactive: s.cfg.Interactive,
	}
}

// Run executes the session. The returned error is non-nil only for
// fatal outcomes; skipped sessions and benign stops report through the
// result's status.
func (s *Session) Run() (*types.RunResult, error) {
	result := &types.RunResult{Status: types.RunCompleted}

	// Running an interactive-only policy without a terminal would hang
	// or silently do nothing useful.
	if s.cfg.Mode == types.ModeUnset && !s.cfg.Interactive {
		s.logger.Debug().Msg("Will not run in non-interactive mode without unattended turned on")
		result.Status = types.RunSkipped
		return result, nil
	}

	pairs, err := s.lister.ListPairs(s.cfg.Packages)
	if err != nil {
		result.Status = types.RunFatal
		return result, errors.Wrap(err, errors.ErrSessionFatal, "variant discovery failed")
	}

	for _, pair := range pairs {
		outcome := s.resolvePair(pair)

		if outcome.Err != nil {
			var stop *StopError
			if stderrors.As(outcome.Err, &stop) {
				// Benign race: downgrade to debug, end the run cleanly
				s.logger.Debug().
					Str("reason", string(stop.Reason)).
					Str("conf", pair.ConfFile).
					Msg("Ignoring early stop from resolution")
				result.Status = types.RunBenignStop
				result.Reason = stop.Reason
				result.Outcomes = append(result.Outcomes, types.PairOutcome{Pair: pair, Action: types.ActionSkipped})
				return result, nil
			}

			var exit *ExitError
			if stderrors.As(outcome.Err, &exit) {
				result.Status = types.RunFatal
				result.Code = exit.Code
				result.Outcomes = append(result.Outcomes, outcome)
				return result, errors.Wrapf(outcome.Err, errors.ErrSessionFatal, "resolution of %s failed", pair.ConfFile)
			}

			// Per-pair filesystem errors are logged and isolated; the
			// rest of the batch still runs.
			s.logger.Error().
				Err(outcome.Err).
				Str("package", pair.Package).
				Str("conf", pair.ConfFile).
				Msg("Failed to resolve pair, continuing with remaining pairs")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

// resolvePair runs the full decision chain for one pair: vanish check,
// duplicate short-circuit, policy decision, execution.
func (s *Session) resolvePair(pair types.FileVariantPair) types.PairOutcome {
	outcome := types.PairOutcome{Pair: pair, Action: types.ActionNone}

	// Later pairs may be affected by earlier actions or by third
	// parties; a vanished file is a skip, not a failure.
	for _, path := range []string{pair.ConfFile, pair.OtherFile} {
		if _, err := s.fs.Lstat(path); err != nil {
			if os.IsNotExist(err) {
				s.logger.Info().Str("path", path).Msg("File was removed by 3rd party, skipping")
				outcome.Action = types.ActionSkipped
				return outcome
			}
			outcome.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot lstat %s", path)
			return outcome
		}
	}

	dup, err := IsDuplicate(s.fs, pair.ConfFile, pair.OtherFile)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if dup {
		// Identical content: the variant is pure clutter in every mode,
		// including diff mode where the diff would be empty anyway.
		if err := s.executor.Remove(pair.OtherFile); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Action = types.ActionRemovedDup
		return outcome
	}

	switch Decide(pair.Kind, s.cfg.Mode) {
	case DecideShowDiff:
		from, to := DiffOrder(pair)
		if err := s.differ.ShowDiff(from, to); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Action = types.ActionShowedDiff

	case DecideKeepConf:
		if err := s.executor.Remove(pair.OtherFile); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Action = types.ActionKeptCurrent

	case DecideTakeOther:
		if err := s.executor.Replace(pair.ConfFile, pair.OtherFile); err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Action = types.ActionTookOther

	case DecidePrompt:
		action, err := s.promptLoop(pair)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Action = action
	}

	return outcome
}

// promptLoop drives the interactive flow for one pair until a decision
// that ends it. ShowDiff re-prompts; everything else is final.
func (s *Session) promptLoop(pair types.FileVariantPair) (types.PairAction, error) {
	if s.prompter == nil {
		return types.ActionNone, errors.New(errors.ErrInternal, "interactive resolution requested but no prompter is wired")
	}

	for {
		choice, err := s.prompter.Choose(pair)
		if err != nil {
			return types.ActionNone, errors.Wrap(err, errors.ErrPromptFailed, "prompt failed")
		}

		switch choice {
		case ChoiceKeepCurrent:
			if err := s.executor.Remove(pair.OtherFile); err != nil {
				return types.ActionNone, err
			}
			return types.ActionKeptCurrent, nil

		case ChoiceTakeOther:
			if err := s.executor.Replace(pair.ConfFile, pair.OtherFile); err != nil {
				return types.ActionNone, err
			}
			return types.ActionTookOther, nil

		case ChoiceShowDiff:
			from, to := DiffOrder(pair)
			if err := s.differ.ShowDiff(from, to); err != nil {
				return types.ActionNone, err
			}
			// ask again

		case ChoiceMerge:
			if s.merger == nil {
				return types.ActionNone, &StopError{Reason: types.StopMissingMergeTool}
			}
			if err := s.merger.Merge(pair.ConfFile, pair.OtherFile); err != nil {
				return types.ActionNone, err
			}
			return types.ActionMerged, nil

		case ChoiceSkip:
			return types.ActionSkipped, nil

		default:
			return types.ActionNone, errors.Newf(errors.ErrInternal, "unknown prompt choice %d", choice)
		}
	}
}
