package chatauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AuthClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := defaultConfig()
	cfg.Service.BaseURL = srv.URL
	return NewAuthClient(cfg.Service, nil, cfg.Messages.TransportFallback, nil)
}

func TestClientNormalization(t *testing.T) {
	cases := []struct {
		name        string
		handler     http.HandlerFunc
		wantKind    OutcomeKind
		wantMessage string
	}{
		{
			name:        "accepted",
			handler:     acceptingHandler("Login successful"),
			wantKind:    OutcomeSuccess,
			wantMessage: "Login successful",
		},
		{
			name:        "denied with 200",
			handler:     rejectingHandler(http.StatusOK, "Invalid credentials"),
			wantKind:    OutcomeRejected,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "denied with 401",
			handler:     rejectingHandler(http.StatusUnauthorized, "Invalid credentials"),
			wantKind:    OutcomeRejected,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "denied with 409 duplicate",
			handler:     rejectingHandler(http.StatusConflict, "Username already exists"),
			wantKind:    OutcomeRejected,
			wantMessage: "Username already exists",
		},
		{
			name: "server error without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantKind:    OutcomeTransportError,
			wantMessage: defaultTransportFallback,
		},
		{
			name: "malformed success body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("<html>proxy error</html>"))
			},
			wantKind:    OutcomeTransportError,
			wantMessage: defaultTransportFallback,
		},
		{
			name: "denial without message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"success": false})
			},
			wantKind:    OutcomeRejected,
			wantMessage: defaultTransportFallback,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler)

			out := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
			if out.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", out.Kind, tc.wantKind)
			}
			if out.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", out.Message, tc.wantMessage)
			}
			if (out.Session != nil) != (tc.wantKind == OutcomeSuccess) {
				t.Fatalf("session presence mismatch for kind %v", out.Kind)
			}
		})
	}
}

func TestClientSuccessCarriesSession(t *testing.T) {
	client := newTestClient(t, acceptingHandler("Welcome back"))

	out := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
	if out.Kind != OutcomeSuccess {
		t.Fatalf("kind = %v", out.Kind)
	}
	if out.Session.UserID != "u1" || out.Session.Username != "alice" {
		t.Fatalf("session not parsed: %+v", out.Session)
	}
	if len(out.Session.Raw) == 0 {
		t.Fatal("raw response body not retained on session")
	}
}

func TestClientNetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(acceptingHandler("unused"))
	cfg := defaultConfig()
	cfg.Service.BaseURL = srv.URL
	srv.Close() // connection refused from here on

	client := NewAuthClient(cfg.Service, nil, cfg.Messages.TransportFallback, nil)
	out := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
	if out.Kind != OutcomeTransportError {
		t.Fatalf("kind = %v, want transport error", out.Kind)
	}
	if out.Message != defaultTransportFallback {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestClientSendsServiceWireFormat(t *testing.T) {
	var gotPath, gotContentType, gotRequestID string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = jsonDecode(r, &gotBody)
		writeJSON(w, http.StatusOK, map[string]any{"_id": "u1", "message": "ok"})
	})

	client.Register(context.Background(), RegistrationInput{
		FullName:        "Alice Example",
		Username:        "alice",
		Email:           "a@b.com",
		Password:        "pw",
		ConfirmPassword: "pw",
		Gender:          GenderFemale,
	})

	if gotPath != defaultRegisterPath {
		t.Fatalf("path = %q, want %q", gotPath, defaultRegisterPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Fatal("expected an X-Request-ID per attempt")
	}
	// The service expects the original field names, confPassword included.
	for _, key := range []string{"fullName", "username", "email", "password", "confPassword", "gender"} {
		if _, ok := gotBody[key]; !ok {
			t.Fatalf("request body missing %q: %v", key, gotBody)
		}
	}
	if gotBody["gender"] != "female" {
		t.Fatalf("gender = %v", gotBody["gender"])
	}
}
