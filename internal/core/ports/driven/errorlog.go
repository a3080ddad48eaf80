package driven

// FailureLog persists delivery failure reports.
type FailureLog interface {
	// Append adds text to the end of the log, creating it if absent.
	Append(text string) error

	// Path returns the log file location.
	Path() string
}
