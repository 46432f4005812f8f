package model

// StepName identifies a provisioning step.
type StepName string

// Provisioning steps, in execution order.
const (
	StepRoot         StepName = "root"
	StepMode         StepName = "mode"
	StepInterpreter  StepName = "interpreter"
	StepRuntime      StepName = "runtime"
	StepDependencies StepName = "dependencies"
	StepActivate     StepName = "activate"
	StepHooks        StepName = "hooks"
)

// StepStatus is the outcome of a single step.
type StepStatus string

// Available StepStatus values.
const (
	StatusDone    StepStatus = "done"
	StatusSkipped StepStatus = "skipped"
	StatusFailed  StepStatus = "failed"
	StatusWarning StepStatus = "warning"
)

// StepRecord is one line of the decision trace.
type StepRecord struct {
	Step    StepName
	Status  StepStatus
	Message string
}

// RuntimeAction is the decision taken for the runtime environment.
type RuntimeAction string

// Available RuntimeAction values.
const (
	RuntimeCreate   RuntimeAction = "create"
	RuntimeReuse    RuntimeAction = "reuse"
	RuntimeRecreate RuntimeAction = "recreate"
	RuntimeSkip     RuntimeAction = "skip"
)

// Exit codes returned by a provisioning run.
const (
	ExitOK          = 0
	ExitFatal       = 1
	ExitHookFailure = 2
)

// ProvisionResult is the terminal status of a provisioning run.
type ProvisionResult struct {
	Success  bool
	Messages []string
	ExitCode int
	Steps    []StepRecord
	// Err is the error that ended the run, or the hook error when only hook
	// installation failed.
	Err error
}

// Plan describes what a provisioning run would do, without doing it.
type Plan struct {
	Context        BootstrapContext
	RuntimeAction  RuntimeAction
	RuntimeVersion Version
	RuntimeReason  string
	Strategy       string
	Manifests      []Manifest
	HookConfig     HookConfig
}

// HookConfig summarizes the hook framework configuration at the project root.
type HookConfig struct {
	Path    Path
	Present bool
	Repos   int
	Hooks   int
}

func (r StepRecord) String() string {
	return "[" + string(r.Step) + "] " + string(r.Status) + ": " + r.Message
}
