package controller

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// progressModel shows a spinner next to the running step and prints every
// completed decision above it.
type progressModel struct {
	spinner spinner.Model
	styles  styles
	current string
	width   int
	done    bool
}

func newProgressModel(st styles) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  st,
		current: "starting",
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		return pm, nil
	case beginMsg:
		pm.current = string(msg.step)
		return pm, nil
	case stepMsg:
		return pm, tea.Println(pm.styles.record(msg.rec))
	case summaryMsg:
		pm.done = true
		return pm, tea.Sequence(
			tea.Println("\n"+renderSteps(msg.result.Steps)+pm.styles.summary(msg.result)),
			tea.Quit,
		)
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.done {
		return ""
	}

	return truncateToWidth(pm.spinner.View()+" "+pm.current+"...", pm.width) + "\n"
}
