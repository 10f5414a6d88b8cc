package emit

// NullEmitter implements Emitter by discarding all events.
//
// Use it to disable event emission without changing wiring, or in
// benchmarks where observability overhead would skew timings.
type NullEmitter struct{}

// NewNullEmitter creates a new NullEmitter.
func NewNullEmitter() *NullEmitter {
	return &NullEmitter{}
}

// Emit discards the event without any processing.
func (n *NullEmitter) Emit(event Event) {
	// No-op: discard the event
}
