// Package discovery finds leftover configuration variants (.rpmnew,
// .rpmsave, .rpmorig) and pairs them with their active configuration
// file.
//
// Package-database-backed discovery belongs to the host; this package
// defines the interface the session consumes plus a directory-walking
// implementation for standalone use.
package discovery

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/logging"
	"github.com/confmend/confmend/pkg/types"
)

// VariantLister produces the file-variant pairs a session should
// resolve, in discovery order.
type VariantLister interface {
	// ListPairs returns the pairs for the given package names. An empty
	// slice of packages means "no filter".
	ListPairs(packages []string) ([]types.FileVariantPair, error)
}

// variant suffixes, in the order the scanner reports them for one slot
var suffixKinds = []struct {
	suffix string
	kind   types.PairKind
}{
	{".rpmnew", types.PairRpmnew},
	{".rpmsave", types.PairRpmsave},
	{".rpmorig", types.PairRpmsave},
}

// DirScanner walks a set of directories looking for variant files.
type DirScanner struct {
	fs     types.FS
	roots  []string
	logger zerolog.Logger
}

// NewDirScanner creates a scanner over the given root directories.
func NewDirScanner(fsys types.FS, roots []string) *DirScanner {
	return &DirScanner{
		fs:     fsys,
		roots:  roots,
		logger: logging.GetLogger("discovery"),
	}
}

// ListPairs walks the scanner's roots depth-first and returns every
// variant file paired with its base configuration file. Walk order is
// deterministic (directory entries are sorted by name).
func (s *DirScanner) ListPairs(packages []string) ([]types.FileVariantPair, error) {
	var pairs []types.FileVariantPair
	for _, root := range s.roots {
		if err := s.walk(root, packages, &pairs); err != nil {
			return nil, err
		}
	}
	return pairs, nil
}

func (s *DirScanner) walk(dir string, packages []string, pairs *[]types.FileVariantPair) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			// Unreadable subdirectories are logged and skipped so one
			// protected directory cannot sink the whole scan.
			if err := s.walk(path, packages, pairs); err != nil {
				s.logger.Debug().Err(err).Str("dir", path).Msg("Skipping unreadable directory")
			}
			continue
		}

		pair, ok := s.pairForVariant(path)
		if !ok {
			continue
		}
		if !matchesPackages(pair.Package, packages) {
			continue
		}
		s.logger.Debug().
			Str("conf", pair.ConfFile).
			Str("variant", pair.OtherFile).
			Str("kind", string(pair.Kind)).
			Msg("Found variant pair")
		*pairs = append(*pairs, pair)
	}
	return nil
}

// pairForVariant maps a variant file path to its pair, or reports false
// when the path is not a variant or its base file is gone.
func (s *DirScanner) pairForVariant(path string) (types.FileVariantPair, bool) {
	for _, sk := range suffixKinds {
		if !strings.HasSuffix(path, sk.suffix) {
			continue
		}
		conf := strings.TrimSuffix(path, sk.suffix)
		// Lstat, not Stat: a broken symlink still occupies the slot and
		// must be reconciled.
		if _, err := s.fs.Lstat(conf); err != nil {
			s.logger.Debug().Str("variant", path).Msg("Variant has no base file, ignoring")
			return types.FileVariantPair{}, false
		}
		return types.FileVariantPair{
			Package:   packageFor(conf),
			ConfFile:  conf,
			OtherFile: path,
			Kind:      sk.kind,
		}, true
	}
	return types.FileVariantPair{}, false
}

// packageFor derives a package attribution from the config file name.
// Without the host's package database this is a best-effort stem: the
// file name with its extension stripped.
func packageFor(confFile string) string {
	base := filepath.Base(confFile)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func matchesPackages(pkg string, packages []string) bool {
	if len(packages) == 0 {
		return true
	}
	for _, p := range packages {
		if pkg == p {
			return true
		}
	}
	return false
}
