package ui_test

import (
	"bytes"
	"testing"

	"github.com/confmend/confmend/pkg/types"
	"github.com/confmend/confmend/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderSummary(&buf, &types.RunResult{Status: types.RunCompleted}))
	assert.Contains(t, buf.String(), "Nothing to reconcile")
}

func TestRenderSummary_ListsOutcomes(t *testing.T) {
	result := &types.RunResult{
		Status: types.RunCompleted,
		Outcomes: []types.PairOutcome{
			{
				Pair:   types.FileVariantPair{Package: "httpd", ConfFile: "/etc/httpd.conf", Kind: types.PairRpmnew},
				Action: types.ActionTookOther,
			},
			{
				Pair:   types.FileVariantPair{Package: "sshd", ConfFile: "/etc/sshd.conf", Kind: types.PairRpmsave},
				Action: types.ActionKeptCurrent,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ui.RenderSummary(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "httpd")
	assert.Contains(t, out, "/etc/sshd.conf")
	assert.Contains(t, out, string(types.ActionKeptCurrent))
}
