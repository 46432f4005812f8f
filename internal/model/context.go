package model

// BootstrapContext is built once at the start of a run and passed by value to
// every later step. Steps never consult the process working directory or the
// process environment directly.
type BootstrapContext struct {
	ProjectRoot     Path
	Mode            Mode
	InterpreterPath Path
	// InterpreterVersion is zero when the interpreter was not version-probed
	// (CI runs).
	InterpreterVersion Version
	// RuntimeDir is the absolute path of the runtime environment directory.
	RuntimeDir Path
	// Env is the environment handed to child processes, as KEY=value pairs.
	Env []string
}

// WithEnv returns a copy of the context whose child environment is env.
func (b BootstrapContext) WithEnv(env []string) BootstrapContext {
	b.Env = env
	return b
}
