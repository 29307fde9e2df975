package resolve

import (
	"github.com/rs/zerolog"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/logging"
	"github.com/confmend/confmend/pkg/types"
)

// Executor performs the irreversible filesystem effects of a decision.
type Executor struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewExecutor creates an executor over the given filesystem.
func NewExecutor(fsys types.FS) *Executor {
	return &Executor{
		fs:     fsys,
		logger: logging.GetLogger("resolve.executor"),
	}
}

// Remove deletes path.
func (e *Executor) Remove(path string) error {
	if err := e.fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", path)
	}
	e.logger.Info().Str("path", path).Msg("Removed file")
	return nil
}

// Replace makes target's slot contain source's content and removes the
// source path. Rename is tried first for atomicity; variants live next
// to their base file so this is the common case. A cross-device rename
// falls back to copy-then-remove.
func (e *Executor) Replace(target, source string) error {
	if err := e.fs.Rename(source, target); err == nil {
		e.logger.Info().Str("target", target).Str("source", source).Msg("Replaced file")
		return nil
	}

	data, err := e.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", source)
	}
	info, err := e.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", source)
	}
	if err := e.fs.WriteFile(target, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileReplace, "cannot write %s", target)
	}
	if err := e.fs.Remove(source); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "replaced %s but failed to remove %s", target, source)
	}
	e.logger.Info().Str("target", target).Str("source", source).Msg("Replaced file (copy fallback)")
	return nil
}
