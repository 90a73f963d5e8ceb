package chatauth

import "errors"

var (
	// ErrPasswordMismatch is returned by RegisterForm.Submit when password
	// and confirm-password differ; no network request is issued.
	ErrPasswordMismatch = errors.New("passwords don't match")
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission on the same form instance is still pending.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrFormClosed is returned when the form was closed while a submission
	// was in flight; the stale response is discarded without side effects.
	ErrFormClosed = errors.New("form closed")
	// ErrFormCompleted is returned when Submit is called on a form that has
	// already succeeded.
	ErrFormCompleted = errors.New("form already completed")
	// ErrRejected is the error returned by Submit for a service-reported
	// denial (bad credentials, duplicate account).
	ErrRejected = errors.New("authentication rejected")
	// ErrTransport is the error returned by Submit when the request failed
	// in transit or the response body was malformed.
	ErrTransport = errors.New("transport failure")
	// ErrFlowNotReady is returned when a Flow method is called before the
	// builder wired its dependencies.
	ErrFlowNotReady = errors.New("flow not initialized")
	// ErrNoSession is returned by Flow.RestoreSession when no usable
	// persisted session exists.
	ErrNoSession = errors.New("no persisted session")
	// ErrUnknownField is returned by SetField for a field name the form
	// does not own.
	ErrUnknownField = errors.New("unknown form field")
)
