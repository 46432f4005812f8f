package controller

import (
	m "github.com/mouse-blink/envboot/internal/model"
)

// Message types.
type beginMsg struct {
	step m.StepName
}

type stepMsg struct {
	rec m.StepRecord
}

type summaryMsg struct {
	result m.ProvisionResult
}
