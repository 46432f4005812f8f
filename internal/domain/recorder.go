package domain

import (
	"fmt"

	"github.com/mouse-blink/envboot/internal/controller"
	m "github.com/mouse-blink/envboot/internal/model"
)

// recorder accumulates the decision trace of a run and forwards it to the UI.
type recorder struct {
	ui     controller.UI
	result m.ProvisionResult
}

// newRecorder returns a recorder; a nil ui records silently.
func newRecorder(ui controller.UI) *recorder {
	return &recorder{ui: ui}
}

func (r *recorder) begin(step m.StepName) {
	if r.ui != nil {
		r.ui.Begin(step)
	}
}

func (r *recorder) record(rec m.StepRecord) {
	r.result.Steps = append(r.result.Steps, rec)
	r.result.Messages = append(r.result.Messages, rec.String())

	if r.ui != nil {
		r.ui.Step(rec)
	}
}

func (r *recorder) add(step m.StepName, status m.StepStatus, format string, args ...any) {
	r.record(m.StepRecord{Step: step, Status: status, Message: fmt.Sprintf(format, args...)})
}

// fail records err against step and returns it unchanged.
func (r *recorder) fail(step m.StepName, err error) error {
	r.add(step, m.StatusFailed, "%v", err)
	return err
}

// fatal ends the run with a fatal error.
func (r *recorder) fatal(err error) m.ProvisionResult {
	r.result.Success = false
	r.result.ExitCode = m.ExitFatal
	r.result.Err = err

	return r.summary()
}

// finish ends a run whose fatal steps all succeeded. A hook error still
// produces a failing exit code.
func (r *recorder) finish(hookErr error) m.ProvisionResult {
	r.result.Err = hookErr

	if hookErr != nil {
		r.result.Success = false
		r.result.ExitCode = m.ExitHookFailure
	} else {
		r.result.Success = true
		r.result.ExitCode = m.ExitOK
	}

	return r.summary()
}

func (r *recorder) summary() m.ProvisionResult {
	if r.ui != nil {
		r.ui.Summary(r.result)
	}

	return r.result
}
