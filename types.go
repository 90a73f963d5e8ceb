package chatauth

import (
	"github.com/snaptalk/chatauth/session"
)

// Gender is the tri-state gender selector on the registration form.
// Selecting the currently selected value toggles back to [GenderUnset];
// an unset gender is permitted to reach submission, the service decides
// whether it is required.
type Gender string

const (
	// GenderUnset is the cleared state of the gender selector.
	GenderUnset Gender = ""
	// GenderMale is the "male" selection.
	GenderMale Gender = "male"
	// GenderFemale is the "female" selection.
	GenderFemale Gender = "female"
)

// Status is the submission state of one form instance.
type Status uint8

const (
	// StatusIdle means the form accepts a Submit.
	StatusIdle Status = iota
	// StatusSubmitting means a submission is in flight; a second Submit is
	// rejected with ErrSubmitInFlight.
	StatusSubmitting
	// StatusSucceeded is terminal: the submission completed and the form
	// no longer accepts input.
	StatusSucceeded
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Field names an input on a form, mirroring the element IDs of the
// original sign-in/sign-up markup. SetField rejects names a form does
// not own.
type Field string

const (
	// FieldEmail is an input field accepted by both forms.
	FieldEmail Field = "email"
	// FieldPassword is an input field accepted by both forms.
	FieldPassword Field = "password"
	// FieldFullName is a registration-only input field.
	FieldFullName Field = "fullname"
	// FieldUsername is a registration-only input field.
	FieldUsername Field = "username"
	// FieldConfirmPassword is a registration-only input field.
	FieldConfirmPassword Field = "confpassword"
)

// Credentials is the sign-in payload. Both fields are required; presence
// is enforced by the host form (and re-validated by the service), not
// here.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationInput is the sign-up payload. ConfirmPassword never leaves
// the client as such; it is compared against Password before submission
// and forwarded under the service's confPassword key.
type RegistrationInput struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confPassword"`
	Gender          Gender `json:"gender"`
}

// Session is the durable record proving a user is authenticated, plus
// whatever profile data the service returned alongside it.
type Session = session.Session

// Notifier presents a message to the user. Calls are fire-and-forget;
// no return value is consumed. Every failure path in this package
// produces exactly one notification.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the host UI to a logical route. The controllers only
// ever navigate after persistence and notification have completed, so a
// navigated-to view can rely on the session store being populated.
type Navigator interface {
	NavigateTo(route string)
}

// Logical routes used by the controllers.
const (
	// RouteHome is the destination after a successful sign-in.
	RouteHome = "/"
	// RouteLogin is the destination after a successful sign-up and after
	// logout; registration routes the user to authenticate, it does not
	// itself establish the signed-in experience.
	RouteLogin = "/login"
)
