package ui_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/confmend/confmend/pkg/filesystem"
	"github.com/confmend/confmend/pkg/testutil"
	"github.com/confmend/confmend/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDiff_UnifiedOutput(t *testing.T) {
	dir := t.TempDir()
	a := testutil.CreateFile(t, filepath.Join(dir, "app.conf"), "package = good\ntrue = false\nwhat = \"tahw\"\n")
	b := testutil.CreateFile(t, filepath.Join(dir, "app.conf.rpmnew"), "package = good\ntrue = false\n")

	var buf bytes.Buffer
	differ := ui.NewDiffer(filesystem.NewOS(), &buf).WithColor(false)
	require.NoError(t, differ.ShowDiff(a, b))

	out := buf.String()
	assert.Contains(t, out, "--- "+a)
	assert.Contains(t, out, "+++ "+b)
	assert.Contains(t, out, "@@")
	assert.Contains(t, out, "-what = \"tahw\"")
}

func TestShowDiff_IdenticalFilesProduceNothing(t *testing.T) {
	dir := t.TempDir()
	a := testutil.CreateFile(t, filepath.Join(dir, "a"), "same\n")
	b := testutil.CreateFile(t, filepath.Join(dir, "b"), "same\n")

	var buf bytes.Buffer
	differ := ui.NewDiffer(filesystem.NewOS(), &buf).WithColor(false)
	require.NoError(t, differ.ShowDiff(a, b))
	assert.Empty(t, buf.String())
}

func TestShowDiff_BrokenSymlinkReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	broken := testutil.CreateBrokenSymlink(t, filepath.Join(dir, "app.conf"))
	b := testutil.CreateFile(t, filepath.Join(dir, "app.conf.rpmnew"), "line1\nline2\n")

	var buf bytes.Buffer
	differ := ui.NewDiffer(filesystem.NewOS(), &buf).WithColor(false)
	require.NoError(t, differ.ShowDiff(broken, b))

	out := buf.String()
	assert.Contains(t, out, "+line1")
	assert.Contains(t, out, "+line2")
}
