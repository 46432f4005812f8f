package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/envboot/internal/model"
)

type styles struct {
	step    lipgloss.Style
	message lipgloss.Style
	status  map[m.StepStatus]lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
}

func newStyles() styles {
	return styles{
		step:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Width(14),
		message: lipgloss.NewStyle(),
		status: map[m.StepStatus]lipgloss.Style{
			m.StatusDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			m.StatusSkipped: lipgloss.NewStyle().Faint(true),
			m.StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			m.StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		},
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warn: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

var statusIcons = map[m.StepStatus]string{
	m.StatusDone:    "✓",
	m.StatusSkipped: "-",
	m.StatusFailed:  "✗",
	m.StatusWarning: "!",
}

func (s styles) record(rec m.StepRecord) string {
	icon := s.status[rec.Status].Render(statusIcons[rec.Status])
	return icon + " " + s.step.Render(string(rec.Step)) + s.message.Render(rec.Message)
}

func (s styles) summary(result m.ProvisionResult) string {
	line := summaryLine(result)

	switch {
	case result.Success:
		return s.ok.Render(line)
	case result.ExitCode == m.ExitHookFailure:
		return s.warn.Render(line)
	default:
		return s.fail.Render(line)
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}

	return string(runes) + "..."
}
