package chatauth

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// RegisterForm owns the sign-up form's transient input and submission
// state. It shares the LoginForm state machine plus two local concerns:
// the tri-state gender toggle and the confirm-password gate.
type RegisterForm struct {
	formCore
	flow *Flow

	mu    sync.Mutex
	input RegistrationInput
}

// SetField updates one named input.
func (f *RegisterForm) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldFullName:
		f.input.FullName = value
	case FieldUsername:
		f.input.Username = value
	case FieldEmail:
		f.input.Email = value
	case FieldPassword:
		f.input.Password = value
	case FieldConfirmPassword:
		f.input.ConfirmPassword = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ToggleGender emulates the two mutually exclusive checkboxes of the
// sign-up form: selecting the currently selected value clears the field
// back to unset. Toggling GenderUnset is a no-op. An unset gender is
// allowed to reach submission; the service decides whether it is
// required.
func (f *RegisterForm) ToggleGender(g Gender) {
	if g != GenderMale && g != GenderFemale {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.input.Gender == g {
		f.input.Gender = GenderUnset
		return
	}
	f.input.Gender = g
}

// Input returns a copy of the current input state.
func (f *RegisterForm) Input() RegistrationInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Submit runs one sign-up attempt. Before anything touches the network,
// password and confirm-password are compared; on mismatch the form never
// transitions to Submitting, no request is issued, and exactly one
// "passwords don't match" notification fires.
//
// On success the session is persisted and the user is routed to the
// login screen rather than home: registration routes the user to
// authenticate, it does not itself establish the signed-in experience.
func (f *RegisterForm) Submit(ctx context.Context) error {
	if f.Closed() {
		return ErrFormClosed
	}
	switch f.Status() {
	case StatusSucceeded:
		return ErrFormCompleted
	case StatusSubmitting:
		f.flow.metrics.Inc(MetricSubmitBlocked)
		return ErrSubmitInFlight
	}

	input := f.Input()
	if input.Password != input.ConfirmPassword {
		f.flow.metrics.Inc(MetricPasswordMismatch)
		f.flow.notifier.Error(f.flow.config.Messages.PasswordMismatch)
		return ErrPasswordMismatch
	}

	if err := f.begin(); err != nil {
		if err == ErrSubmitInFlight {
			f.flow.metrics.Inc(MetricSubmitBlocked)
		}
		return err
	}

	f.flow.logger.Debug("register submit",
		zap.String("username", input.Username),
		zap.String("email", input.Email))

	out := f.flow.client.Register(ctx, input)

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
		f.flow.metrics.Inc(MetricRegisterSuccess)
		f.flow.notifier.Success(out.Message)
		f.succeed()
		f.flow.navigator.NavigateTo(f.flow.config.Routes.Login)
		return nil

	case OutcomeRejected:
		f.backToIdle()
		f.flow.metrics.Inc(MetricRegisterRejected)
		f.flow.notifier.Error(out.Message)
		return fmt.Errorf("%w: %s", ErrRejected, out.Message)

	default:
		f.backToIdle()
		f.flow.metrics.Inc(MetricRegisterTransportError)
		f.flow.notifier.Error(out.Message)
		return fmt.Errorf("%w: %s", ErrTransport, out.Message)
	}
}
