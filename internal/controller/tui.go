package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/envboot/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	styles  styles
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, styles: newStyles()}
}

// Start launches the progress display.
func (t *TUI) Start() error {
	t.program = tea.NewProgram(newProgressModel(t.styles),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the progress display and waits for it to restore the
// terminal.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.once.Do(t.program.Quit)
	<-t.done
}

// Begin updates the spinner label.
func (t *TUI) Begin(step m.StepName) {
	t.send(beginMsg{step: step})
}

// Step prints one styled status line.
func (t *TUI) Step(rec m.StepRecord) {
	if t.program == nil {
		_, _ = fmt.Fprintln(t.output, t.styles.record(rec))
		return
	}

	t.send(stepMsg{rec: rec})
}

// Summary prints the step table and the terminal status, then ends the
// progress display.
func (t *TUI) Summary(result m.ProvisionResult) {
	if t.program == nil {
		_, _ = fmt.Fprintf(t.output, "\n%s%s\n", renderSteps(result.Steps), t.styles.summary(result))
		return
	}

	t.send(summaryMsg{result: result})
	<-t.done
}

// DisplayPlan prints the decisions a provisioning run would take.
func (t *TUI) DisplayPlan(plan m.Plan) error {
	_, _ = fmt.Fprint(t.output, renderPlan(plan))
	return nil
}

// DisplayManifests prints the discovered manifests in install order.
func (t *TUI) DisplayManifests(root m.Path, manifests []m.Manifest) error {
	if len(manifests) == 0 {
		_, _ = fmt.Fprintf(t.output, "No manifests found under %s\n", root)
		return nil
	}

	_, _ = fmt.Fprintf(t.output, "Manifests under %s:\n\n%s", root, renderManifests(manifests))

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}
