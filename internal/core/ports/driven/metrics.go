package driven

// RunMetrics records batch run counters.
type RunMetrics interface {
	// ObserveSource records the outcome of one processed source.
	ObserveSource(source string, fetched, delivered, failed int, err error)

	// SourceSkipped records a source whose database is absent.
	SourceSkipped(source string)

	// Flush publishes the collected metrics.
	Flush() error
}
