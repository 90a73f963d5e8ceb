package chatauth

import (
	"context"

	"go.uber.org/zap"

	"github.com/snaptalk/chatauth/session"
)

// Flow is the assembled client authentication flow: the auth client, the
// session store, and the injected notification/navigation capabilities.
// Build one through [Builder]; a Flow is safe for concurrent use after
// construction.
type Flow struct {
	config    Config
	client    *AuthClient
	store     *session.Store
	notifier  Notifier
	navigator Navigator
	logger    *zap.Logger
	metrics   *Metrics
}

// Store exposes the session store so session consumers (the chat socket,
// the profile header) can read and subscribe.
func (f *Flow) Store() *session.Store {
	return f.store
}

// Client exposes the auth client, mainly for hosts that need outcomes
// without the form state machine.
func (f *Flow) Client() *AuthClient {
	return f.client
}

// NewLoginForm creates an independent sign-in controller.
func (f *Flow) NewLoginForm() *LoginForm {
	return &LoginForm{flow: f}
}

// NewRegisterForm creates an independent sign-up controller.
func (f *Flow) NewRegisterForm() *RegisterForm {
	return &RegisterForm{flow: f}
}

// RestoreSession reads the persisted session at process start and
// publishes it to store subscribers. Absent or corrupt state is not an
// application fault; it simply means signed out, reported as
// ErrNoSession.
func (f *Flow) RestoreSession(ctx context.Context) (*Session, error) {
	if f == nil || f.store == nil {
		return nil, ErrFlowNotReady
	}
	sess := f.store.Load(ctx)
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Logout clears the persisted session, publishes "no session" to every
// subscriber, and routes the user to the login screen. Logging out while
// already signed out succeeds quietly.
func (f *Flow) Logout(ctx context.Context) error {
	if f == nil || f.store == nil {
		return ErrFlowNotReady
	}
	if err := f.store.Clear(ctx); err != nil {
		f.logger.Error("logout failed", zap.Error(err))
		f.notifier.Error(f.config.Messages.TransportFallback)
		return err
	}
	f.metrics.Inc(MetricSessionCleared)
	f.navigator.NavigateTo(f.config.Routes.Login)
	return nil
}

// MetricsSnapshot returns a point-in-time copy of the flow's counters.
func (f *Flow) MetricsSnapshot() MetricsSnapshot {
	if f == nil || f.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return f.metrics.Snapshot()
}
