package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/envboot/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Begin is a no-op: plain output only shows completed decisions.
func (s *SimpleUI) Begin(_ m.StepName) {}

// Step prints one status line.
func (s *SimpleUI) Step(rec m.StepRecord) {
	s.printf("%s\n", rec)
}

// Summary prints the step table and the terminal status.
func (s *SimpleUI) Summary(result m.ProvisionResult) {
	s.printf("\n%s\n%s\n", renderSteps(result.Steps), summaryLine(result))
}

// DisplayPlan prints the decisions a provisioning run would take.
func (s *SimpleUI) DisplayPlan(plan m.Plan) error {
	s.printf("%s", renderPlan(plan))
	return nil
}

// DisplayManifests prints the discovered manifests in install order.
func (s *SimpleUI) DisplayManifests(root m.Path, manifests []m.Manifest) error {
	if len(manifests) == 0 {
		s.printf("No manifests found under %s\n", root)
		return nil
	}

	s.printf("Manifests under %s:\n\n%s", root, renderManifests(manifests))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
