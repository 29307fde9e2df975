package ui_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/confmend/confmend/pkg/filesystem"
	"github.com/confmend/confmend/pkg/resolve"
	"github.com/confmend/confmend/pkg/testutil"
	"github.com/confmend/confmend/pkg/types"
	"github.com/confmend/confmend/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergePair(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	conf := testutil.CreateFile(t, filepath.Join(dir, "app.conf"), "a\n")
	other := testutil.CreateFile(t, filepath.Join(dir, "app.conf.rpmnew"), "b\n")
	return conf, other
}

func TestMerge_MissingDecisionVariable(t *testing.T) {
	conf, other := mergePair(t)
	t.Setenv("MERGE", "")

	err := ui.NewEnvMerger(filesystem.NewOS()).Merge(conf, other)

	var stop *resolve.StopError
	require.True(t, stderrors.As(err, &stop))
	assert.Equal(t, types.StopMissingMergeTool, stop.Reason)
}

func TestMerge_ToolNotFound(t *testing.T) {
	conf, other := mergePair(t)
	t.Setenv("MERGE", "/no/such/merge-tool")

	err := ui.NewEnvMerger(filesystem.NewOS()).Merge(conf, other)

	var stop *resolve.StopError
	require.True(t, stderrors.As(err, &stop))
	assert.Equal(t, types.StopMissingMergeTool, stop.Reason)
}

func TestMerge_VanishedFile(t *testing.T) {
	conf, _ := mergePair(t)
	t.Setenv("MERGE", "true")

	err := ui.NewEnvMerger(filesystem.NewOS()).Merge(conf, conf+".gone")

	var stop *resolve.StopError
	require.True(t, stderrors.As(err, &stop))
	assert.Equal(t, types.StopFileVanished, stop.Reason)
}

func TestMerge_ToolSucceeds(t *testing.T) {
	conf, other := mergePair(t)
	t.Setenv("MERGE", "true")

	assert.NoError(t, ui.NewEnvMerger(filesystem.NewOS()).Merge(conf, other))
}

func TestMerge_ToolFailurePropagatesCode(t *testing.T) {
	conf, other := mergePair(t)
	t.Setenv("MERGE", "false")

	err := ui.NewEnvMerger(filesystem.NewOS()).Merge(conf, other)

	var exit *resolve.ExitError
	require.True(t, stderrors.As(err, &exit))
	assert.Equal(t, 1, exit.Code)
}
