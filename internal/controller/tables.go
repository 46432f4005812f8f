package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/envboot/internal/model"
)

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

// renderSteps lists the final status of every step that ran.
func renderSteps(steps []m.StepRecord) string {
	var order []m.StepName

	last := make(map[m.StepName]m.StepRecord)

	for _, rec := range steps {
		if _, seen := last[rec.Step]; !seen {
			order = append(order, rec.Step)
		}

		last[rec.Step] = rec
	}

	var buf bytes.Buffer

	table := newTable(&buf, "Step", "Status")
	for _, step := range order {
		table.Append([]string{string(step), string(last[step].Status)})
	}

	table.Render()

	return buf.String()
}

func renderPlan(plan m.Plan) string {
	var buf bytes.Buffer

	runtime := string(plan.RuntimeAction)
	if plan.RuntimeReason != "" && plan.RuntimeAction != m.RuntimeReuse {
		runtime += " (" + plan.RuntimeReason + ")"
	}

	if !plan.RuntimeVersion.IsZero() {
		runtime += ", found Python " + plan.RuntimeVersion.String()
	}

	interpreter := string(plan.Context.InterpreterPath)
	if !plan.Context.InterpreterVersion.IsZero() {
		interpreter += " (Python " + plan.Context.InterpreterVersion.String() + ")"
	}

	hooks := "not installed (CI mode)"
	if plan.Context.Mode == m.ModeLocal {
		hooks = "skipped, no config"
		if plan.HookConfig.Present {
			hooks = fmt.Sprintf("install %d hooks from %d repositories", plan.HookConfig.Hooks, plan.HookConfig.Repos)
		}
	}

	table := newTable(&buf, "Decision", "Value")
	table.AppendBulk([][]string{
		{"project root", string(plan.Context.ProjectRoot)},
		{"mode", string(plan.Context.Mode)},
		{"interpreter", interpreter},
		{"runtime", runtime},
		{"strategy", plan.Strategy},
		{"hooks", hooks},
	})
	table.Render()

	if len(plan.Manifests) > 0 {
		buf.WriteString("\n")
		buf.WriteString(renderManifests(plan.Manifests))
	}

	return buf.String()
}

func renderManifests(manifests []m.Manifest) string {
	var buf bytes.Buffer

	table := newTable(&buf, "#", "Kind", "Manifest")
	for i, manifest := range manifests {
		table.Append([]string{fmt.Sprintf("%d", i+1), string(manifest.Kind), manifest.Rel})
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%d", len(manifests))})
	table.Render()

	return buf.String()
}

func summaryLine(result m.ProvisionResult) string {
	switch {
	case result.Success:
		return "bootstrap complete"
	case result.ExitCode == m.ExitHookFailure:
		return fmt.Sprintf("dependencies installed, but hooks failed (exit %d): %v", result.ExitCode, result.Err)
	default:
		return fmt.Sprintf("bootstrap failed (exit %d): %v", result.ExitCode, result.Err)
	}
}
