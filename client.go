package chatauth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/snaptalk/chatauth/session"
)

// maxResponseBody bounds how much of a response is read when normalizing
// an outcome. Auth responses are small; anything larger is malformed.
const maxResponseBody = 1 << 20

// AuthClient translates credential payloads into normalized Outcomes and
// isolates every transport concern from the form controllers. It never
// retries: a failed attempt surfaces immediately and the user
// re-initiates.
type AuthClient struct {
	httpClient *http.Client
	service    ServiceConfig
	fallback   string
	logger     *zap.Logger
}

// NewAuthClient creates a client against the given service. A nil
// httpClient gets a default with the configured timeout; a nil logger is
// replaced with a no-op logger.
func NewAuthClient(service ServiceConfig, httpClient *http.Client, fallbackMessage string, logger *zap.Logger) *AuthClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: service.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if fallbackMessage == "" {
		fallbackMessage = defaultTransportFallback
	}
	return &AuthClient{
		httpClient: httpClient,
		service:    service,
		fallback:   fallbackMessage,
		logger:     logger,
	}
}

// Login submits sign-in credentials and normalizes the response.
func (c *AuthClient) Login(ctx context.Context, creds Credentials) Outcome {
	return c.post(ctx, c.service.LoginPath, creds)
}

// Register submits a sign-up payload and normalizes the response.
func (c *AuthClient) Register(ctx context.Context, input RegistrationInput) Outcome {
	return c.post(ctx, c.service.RegisterPath, input)
}

// wireResponse is the duck-typed {success, message} shape the service
// answers with on both paths. Success is a pointer: only an explicit
// false is a denial.
type wireResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *AuthClient) post(ctx context.Context, path string, payload any) Outcome {
	attemptID := uuid.NewString()
	log := c.logger.With(zap.String("attempt_id", attemptID), zap.String("path", path))

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("payload encode failed", zap.Error(err))
		return transportOutcome(c.fallback)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.service.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		log.Error("request build failed", zap.Error(err))
		return transportOutcome(c.fallback)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", attemptID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return transportOutcome(c.fallback)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.Warn("response read failed", zap.Error(err))
		return transportOutcome(c.fallback)
	}

	return c.normalize(log, resp.StatusCode, raw)
}

// normalize maps status code + body onto the three-way Outcome:
//
//   - a parseable body carrying success=false, or a non-2xx status with a
//     parseable service message, is a Rejected (expected denial);
//   - a 2xx body that parses and does not deny is a Success whose body is
//     the session;
//   - everything else is a TransportError with the generic fallback text.
func (c *AuthClient) normalize(log *zap.Logger, status int, raw []byte) Outcome {
	var wire wireResponse
	parseErr := json.Unmarshal(raw, &wire)

	denied := parseErr == nil && wire.Success != nil && !*wire.Success

	if status < 200 || status >= 300 {
		if parseErr == nil && wire.Message != "" {
			log.Info("attempt rejected", zap.Int("status", status))
			return rejectedOutcome(wire.Message)
		}
		log.Warn("unusable error response", zap.Int("status", status))
		return transportOutcome(c.fallback)
	}

	if parseErr != nil {
		log.Warn("malformed response body", zap.Int("status", status))
		return transportOutcome(c.fallback)
	}

	if denied {
		msg := wire.Message
		if msg == "" {
			msg = c.fallback
		}
		log.Info("attempt rejected", zap.Int("status", status))
		return rejectedOutcome(msg)
	}

	sess, err := session.Decode(raw)
	if err != nil {
		log.Warn("session decode failed", zap.Int("status", status))
		return transportOutcome(c.fallback)
	}
	log.Info("attempt accepted", zap.String("user_id", sess.UserID))
	return successOutcome(sess, wire.Message)
}
