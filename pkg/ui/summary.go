package ui

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/confmend/confmend/pkg/types"
)

// RenderSummary writes the end-of-session table of actions taken.
func RenderSummary(out io.Writer, result *types.RunResult) error {
	if len(result.Outcomes) == 0 {
		pterm.Fprintln(out, "Nothing to reconcile.")
		return nil
	}

	data := pterm.TableData{{"PACKAGE", "FILE", "ACTION"}}
	for _, o := range result.Outcomes {
		action := string(o.Action)
		if o.Err != nil {
			action = "error: " + o.Err.Error()
		}
		data = append(data, []string{o.Pair.Package, o.Pair.ConfFile, action})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		WithWriter(out).
		Render()
}
