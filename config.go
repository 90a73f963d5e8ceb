package chatauth

import (
	"errors"
	"strings"
	"time"
)

// Config carries all tunables for a Flow. Config instances are intended
// to be set up during initialization and then treated as immutable.
type Config struct {
	Service  ServiceConfig
	Session  SessionConfig
	Routes   RoutesConfig
	Messages MessagesConfig
	Metrics  MetricsConfig
}

/*
====================================
SERVICE CONFIG
====================================
*/

// ServiceConfig locates the remote auth service. BaseURL is the origin
// the /api prefix is forwarded to; in development that forwarding is
// deployment configuration, not part of this flow.
type ServiceConfig struct {
	BaseURL      string
	LoginPath    string
	RegisterPath string
	Timeout      time.Duration
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls session persistence. StorageKey is the single
// durable key the serialized session lives under; its absence means
// logged out.
type SessionConfig struct {
	StorageKey string
}

/*
====================================
ROUTES CONFIG
====================================
*/

// RoutesConfig overrides the logical routes the controllers navigate to.
type RoutesConfig struct {
	Home  string
	Login string
}

/*
====================================
MESSAGES CONFIG
====================================
*/

// MessagesConfig holds the client-local user-facing strings. Service
// messages are always surfaced verbatim; these cover the cases where the
// service never produced one.
type MessagesConfig struct {
	TransportFallback string
	PasswordMismatch  string
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig toggles the in-process counters. When Enabled is false
// all metric operations are no-ops.
type MetricsConfig struct {
	Enabled bool
}

const (
	defaultLoginPath    = "/api/auth/login"
	defaultRegisterPath = "/api/auth/register"
	defaultStorageKey   = "chatapp"
	defaultTimeout      = 15 * time.Second

	defaultTransportFallback = "An error occurred."
	defaultPasswordMismatch  = "Passwords don't match"
)

func defaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			LoginPath:    defaultLoginPath,
			RegisterPath: defaultRegisterPath,
			Timeout:      defaultTimeout,
		},
		Session: SessionConfig{
			StorageKey: defaultStorageKey,
		},
		Routes: RoutesConfig{
			Home:  RouteHome,
			Login: RouteLogin,
		},
		Messages: MessagesConfig{
			TransportFallback: defaultTransportFallback,
			PasswordMismatch:  defaultPasswordMismatch,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// cloneConfig returns a deep copy. All fields are value types today, but
// every assignment goes through here so adding a slice or map field later
// cannot alias builder state into a live Flow.
func cloneConfig(cfg Config) Config {
	return cfg
}

// Validate checks the config for internally inconsistent or unusable
// values. A zero Config is not valid; start from the builder's defaults.
func (c Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("Service.BaseURL required")
	}
	if strings.HasSuffix(c.Service.BaseURL, "/") {
		return errors.New("Service.BaseURL must not end with a slash")
	}
	if !strings.HasPrefix(c.Service.LoginPath, "/") {
		return errors.New("Service.LoginPath must start with a slash")
	}
	if !strings.HasPrefix(c.Service.RegisterPath, "/") {
		return errors.New("Service.RegisterPath must start with a slash")
	}
	if c.Service.Timeout < 0 {
		return errors.New("Service.Timeout must not be negative")
	}
	if c.Session.StorageKey == "" {
		return errors.New("Session.StorageKey required")
	}
	if c.Routes.Home == "" || c.Routes.Login == "" {
		return errors.New("Routes.Home and Routes.Login required")
	}
	if c.Messages.TransportFallback == "" {
		return errors.New("Messages.TransportFallback required")
	}
	if c.Messages.PasswordMismatch == "" {
		return errors.New("Messages.PasswordMismatch required")
	}
	return nil
}
