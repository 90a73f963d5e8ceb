package chatauth

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/snaptalk/chatauth/session"
)

// Builder assembles a Flow. Configure it during initialization and call
// Build once; the resulting Flow treats its dependencies as immutable.
type Builder struct {
	config Config

	httpClient *http.Client
	backend    session.Backend
	store      *session.Store
	notifier   Notifier
	navigator  Navigator
	logger     *zap.Logger

	built bool
}

// New creates a Builder with the default configuration: the original
// /api/auth paths, the "chatapp" storage key, and metrics enabled.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the auth service origin without touching the rest of
// the config.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.Service.BaseURL = baseURL
	return b
}

// WithHTTPClient supplies the transport. When absent, Build creates a
// default client with the configured timeout.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithSessionBackend supplies the durable backend the Flow's session
// store persists through (file, Redis, memory).
func (b *Builder) WithSessionBackend(backend session.Backend) *Builder {
	b.backend = backend
	return b
}

// WithSessionStore supplies a pre-built store, for hosts that share one
// store across several flows or substitute a fake in tests. Takes
// precedence over WithSessionBackend.
func (b *Builder) WithSessionStore(store *session.Store) *Builder {
	b.store = store
	return b
}

// WithNotifier supplies the message-presentation capability. Required.
func (b *Builder) WithNotifier(n Notifier) *Builder {
	b.notifier = n
	return b
}

// WithNavigator supplies the routing capability. Required.
func (b *Builder) WithNavigator(n Navigator) *Builder {
	b.navigator = n
	return b
}

// WithLogger supplies a zap logger. When absent, logging is a no-op.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires the auth client and session
// store, and returns the Flow. A Builder can build at most once.
func (b *Builder) Build() (*Flow, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.notifier == nil {
		return nil, errors.New("notifier required")
	}
	if b.navigator == nil {
		return nil, errors.New("navigator required")
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := b.store
	if store == nil {
		if b.backend == nil {
			return nil, errors.New("session backend or store required")
		}
		store = session.NewStore(b.backend, logger.Named("session"))
	}

	client := NewAuthClient(cfg.Service, b.httpClient, cfg.Messages.TransportFallback, logger.Named("client"))

	flow := &Flow{
		config:    cfg,
		client:    client,
		store:     store,
		notifier:  b.notifier,
		navigator: b.navigator,
		logger:    logger,
		metrics:   NewMetrics(cfg.Metrics),
	}

	b.built = true

	return flow, nil
}
