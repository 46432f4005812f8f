package model

// Mode is the execution mode of a bootstrap run. It is computed once at start
// and never changes for the duration of the run.
type Mode string

const (
	// ModeLocal is an interactive run on a developer machine. Runtime
	// management, activation and hook installation all take place.
	ModeLocal Mode = "local"
	// ModeCI is a run under continuous integration. The interpreter and the
	// runtime are provided by the caller, only dependencies are synchronized.
	ModeCI Mode = "ci"
)

// IsCI reports whether the run is a CI run.
func (m Mode) IsCI() bool { return m == ModeCI }
