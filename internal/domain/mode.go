package domain

import (
	"strings"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

// DetectMode reads the CI indicator variable. Any value other than empty,
// "0" or "false" selects CI mode.
func DetectMode(env adapter.Environment, variable string) m.Mode {
	switch strings.ToLower(strings.TrimSpace(env.Getenv(variable))) {
	case "", "0", "false":
		return m.ModeLocal
	default:
		return m.ModeCI
	}
}
