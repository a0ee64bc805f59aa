package common

// EventNZBAdded is the only queue event sizeprio acts on.
const EventNZBAdded = "NZB_ADDED"

// Process exit codes. NZBGet ignores the exit code of queue scripts but the
// POSTPROCESS_* values are what its other script kinds understand, so they
// are used for the three outcomes of a run.
const (
	ExitSuccess = 93
	ExitError   = 94
	ExitNone    = 95

	// ExitInvalidInvocation is used when the process was not started by
	// NZBGet at all.
	ExitInvalidInvocation = 1
)
