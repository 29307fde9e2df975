package resolve

import (
	"bytes"
	"os"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/types"
)

// IsDuplicate reports whether the two files are semantically identical,
// allowing the variant to be dropped without consulting any policy.
//
// A broken symlink is never a duplicate of anything: the missing target
// is information that must not be silently discarded, even when a naive
// content comparison of the link targets would succeed or both reads
// would fail identically.
func IsDuplicate(fsys types.FS, confFile, otherFile string) (bool, error) {
	for _, path := range []string{confFile, otherFile} {
		broken, err := isBrokenSymlink(fsys, path)
		if err != nil {
			return false, err
		}
		if broken {
			return false, nil
		}
	}

	a, err := fsys.ReadFile(confFile)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", confFile)
	}
	b, err := fsys.ReadFile(otherFile)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", otherFile)
	}
	return bytes.Equal(a, b), nil
}

// isBrokenSymlink reports whether path is a symlink whose target does
// not exist.
func isBrokenSymlink(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot lstat %s", path)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}
	// Stat follows the link; failure to resolve means the link is broken
	if _, err := fsys.Stat(path); err != nil {
		return true, nil
	}
	return false, nil
}
