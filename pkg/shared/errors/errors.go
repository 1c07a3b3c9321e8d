package errors

// CommandError carries the process exit code for a command outcome, so the
// root command can translate verdicts without parsing messages.
type CommandError struct {
	ExitCode int
	Message  string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(message string, code int) *CommandError {
	return &CommandError{ExitCode: code, Message: message}
}
