package ui

import (
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/logging"
	"github.com/confmend/confmend/pkg/resolve"
	"github.com/confmend/confmend/pkg/types"
)

// EnvMerger is the "env" merge frontend: it launches the tool named by
// the MERGE environment variable on the two files and leaves the merged
// result in the active slot.
type EnvMerger struct {
	fs types.FS
}

// NewEnvMerger creates the MERGE-variable-driven merge frontend.
func NewEnvMerger(fsys types.FS) *EnvMerger {
	return &EnvMerger{fs: fsys}
}

// Merge runs the external merge tool. A missing MERGE variable and a
// file removed by a third party mid-run are benign stops, not failures;
// any other nonzero tool exit propagates with its code.
func (m *EnvMerger) Merge(conf, other string) error {
	logger := logging.GetLogger("ui.merge")

	tool := os.Getenv("MERGE")
	if tool == "" {
		return &resolve.StopError{Reason: types.StopMissingMergeTool}
	}

	for _, path := range []string{conf, other} {
		if _, err := m.fs.Lstat(path); err != nil {
			if os.IsNotExist(err) {
				return &resolve.StopError{Reason: types.StopFileVanished}
			}
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot lstat %s", path)
		}
	}

	logger.Debug().Str("tool", tool).Str("conf", conf).Str("other", other).Msg("Launching merge tool")

	cmd := exec.Command(tool, conf, other)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return &resolve.ExitError{Code: exitErr.ExitCode()}
		}
		// Tool could not be started at all: the decision variable points
		// at nothing usable.
		return &resolve.StopError{Reason: types.StopMissingMergeTool}
	}
	return nil
}
