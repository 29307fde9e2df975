// Package ui implements the interactive frontend: diff rendering, the
// per-pair prompt, the external merge frontend and the end-of-session
// summary.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/types"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Differ renders unified diffs between two files.
type Differ struct {
	fs    types.FS
	out   io.Writer
	color bool
}

// NewDiffer creates a differ writing to out. Color is used only when the
// terminal supports it.
func NewDiffer(fsys types.FS, out io.Writer) *Differ {
	return &Differ{
		fs:    fsys,
		out:   out,
		color: termenv.ColorProfile() != termenv.Ascii,
	}
}

// WithColor overrides terminal detection. Used by tests and by hosts
// that know their output is not a terminal.
func (d *Differ) WithColor(enabled bool) *Differ {
	d.color = enabled
	return d
}

// ShowDiff writes a unified diff of from -> to. It makes no filesystem
// change.
func (d *Differ) ShowDiff(from, to string) error {
	a, err := d.readFollowing(from)
	if err != nil {
		return err
	}
	b, err := d.readFollowing(to)
	if err != nil {
		return err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: from,
		ToFile:   to,
		Context:  3,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrDiffFailed, "diff computation failed")
	}

	if !d.color {
		_, err = fmt.Fprint(d.out, text)
		return err
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		styled := line
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			styled = headerStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "@@"):
			styled = hunkStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "+"):
			styled = addedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "-"):
			styled = removedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
		}
		if _, err := fmt.Fprint(d.out, styled); err != nil {
			return err
		}
	}
	return nil
}

// readFollowing reads a file's content through symlinks. A broken link
// reads as empty so a diff against it shows the surviving side whole.
func (d *Differ) readFollowing(path string) ([]byte, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	return data, nil
}
