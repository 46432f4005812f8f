// Package controller renders the bootstrap decision trace on the console.
package controller

import (
	m "github.com/mouse-blink/envboot/internal/model"
)

// UI defines the interface for reporting a bootstrap run.
// Implementations can use different output methods (simple text, TUI, etc).
// Console output is informational only; callers rely on the exit code.
type UI interface {
	Start() error
	Close()
	// Begin announces that step is about to run.
	Begin(step m.StepName)
	// Step reports one decision taken by a step.
	Step(rec m.StepRecord)
	// Summary reports the terminal status of the run.
	Summary(result m.ProvisionResult)
	DisplayPlan(plan m.Plan) error
	DisplayManifests(root m.Path, manifests []m.Manifest) error
}
