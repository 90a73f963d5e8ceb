package chatauth

import (
	"sync/atomic"
)

// formCore is the submission state machine shared by both forms:
// Idle → Submitting → Idle (on Rejected/TransportError) or Succeeded
// (terminal). It also tracks liveness so a response arriving after the
// host UI discarded the form is dropped without side effects.
type formCore struct {
	status atomic.Uint32
	closed atomic.Bool
}

// Status returns the current submission state.
func (f *formCore) Status() Status {
	return Status(f.status.Load())
}

// Closed reports whether the host UI has discarded the form.
func (f *formCore) Closed() bool {
	return f.closed.Load()
}

// Close marks the form as no longer mounted. An in-flight submission
// keeps running (there is no cancellation of the HTTP attempt itself),
// but its result is discarded: no persistence, no notification, no
// navigation.
func (f *formCore) Close() {
	f.closed.Store(true)
}

// begin enforces the single-flight guard: exactly one submission per
// form instance may be in flight. Only an Idle form transitions to
// Submitting.
func (f *formCore) begin() error {
	if f.closed.Load() {
		return ErrFormClosed
	}
	if Status(f.status.Load()) == StatusSucceeded {
		return ErrFormCompleted
	}
	if !f.status.CompareAndSwap(uint32(StatusIdle), uint32(StatusSubmitting)) {
		return ErrSubmitInFlight
	}
	return nil
}

// backToIdle returns the form to Idle after a failed attempt; every
// failure path leaves the form re-submittable.
func (f *formCore) backToIdle() {
	f.status.Store(uint32(StatusIdle))
}

// succeed moves the form to its terminal state.
func (f *formCore) succeed() {
	f.status.Store(uint32(StatusSucceeded))
}
