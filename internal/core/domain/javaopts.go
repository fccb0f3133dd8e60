package domain

// JavaOptions carries the extra VM arguments for the external-process
// execution strategy. Only the JAVA strategy consumes it.
type JavaOptions struct {
	// Executable overrides java executable discovery when set.
	Executable string
	// Options are additional VM arguments placed before the launcher arguments.
	Options []string
	// EnableAssertions turns runtime assertions on in the child VM.
	EnableAssertions bool
}
