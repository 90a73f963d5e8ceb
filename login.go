package chatauth

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// LoginForm owns the sign-in form's transient input and submission state.
// One instance per rendered form; instances are independent of each other
// and share nothing but the session store, which only the success path
// writes.
type LoginForm struct {
	formCore
	flow *Flow

	mu    sync.Mutex
	input Credentials
}

// SetField updates one named input. No validation happens here; presence
// and shape are the host form's concern and the service re-validates
// everything.
func (f *LoginForm) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldEmail:
		f.input.Email = value
	case FieldPassword:
		f.input.Password = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Input returns a copy of the current input state.
func (f *LoginForm) Input() Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Submit runs one sign-in attempt:
//
//  1. Transition Idle → Submitting; a concurrent Submit gets
//     ErrSubmitInFlight, a completed form gets ErrFormCompleted.
//  2. Call the auth service. This is the only suspension point.
//  3. On success: persist the session, surface the service message, then
//     navigate home, strictly in that order, so the home view finds the
//     session store already populated.
//  4. On rejection or transport failure: back to Idle with exactly one
//     error notification; the user corrects and retries.
//
// A response arriving after Close is discarded without side effects.
func (f *LoginForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		if err == ErrSubmitInFlight {
			f.flow.metrics.Inc(MetricSubmitBlocked)
		}
		return err
	}

	input := f.Input()
	f.flow.logger.Debug("login submit", zap.String("email", input.Email))

	out := f.flow.client.Login(ctx, input)

	if f.Closed() {
		f.flow.metrics.Inc(MetricStaleResponseDiscarded)
		f.backToIdle()
		return ErrFormClosed
	}

	switch out.Kind {
	case OutcomeSuccess:
		if err := f.flow.store.Set(ctx, out.Session); err != nil {
			f.backToIdle()
			f.flow.logger.Error("session persist failed", zap.Error(err))
			f.flow.notifier.Error(f.flow.config.Messages.TransportFallback)
			return err
		}
		f.flow.metrics.Inc(MetricSessionPersisted)
		f.flow.metrics.Inc(MetricLoginSuccess)
		f.flow.notifier.Success(out.Message)
		f.succeed()
		f.flow.navigator.NavigateTo(f.flow.config.Routes.Home)
		return nil

	case OutcomeRejected:
		f.backToIdle()
		f.flow.metrics.Inc(MetricLoginRejected)
		f.flow.notifier.Error(out.Message)
		return fmt.Errorf("%w: %s", ErrRejected, out.Message)

	default:
		f.backToIdle()
		f.flow.metrics.Inc(MetricLoginTransportError)
		f.flow.notifier.Error(out.Message)
		return fmt.Errorf("%w: %s", ErrTransport, out.Message)
	}
}
