// Package emit provides pluggable observability for search runs.
package emit

// Emitter receives and processes observability events from search
// execution.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files, JSONL
//   - Distributed tracing: OpenTelemetry
//   - In-memory capture for tests and analysis
//
// Implementations should be:
//   - Non-blocking: avoid slowing down the search loop
//   - Thread-safe: separate engine instances may emit concurrently
//   - Resilient: handle backend failures without crashing the search
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	// Emit should not panic; errors are handled internally.
	Emit(event Event)
}
