package chatauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/snaptalk/chatauth/session"
)

// recordingNotifier captures every notification in order.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	events    *eventLog
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
	n.events.append("notify_success")
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
	n.events.append("notify_error")
}

// recordingNavigator captures every navigation in order.
type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
	events *eventLog
}

func (n *recordingNavigator) NavigateTo(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
	n.events.append("navigate:" + route)
}

// eventLog records the relative order of persistence, notification, and
// navigation side effects across fakes.
type eventLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *eventLog) append(entry string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

type testHarness struct {
	flow      *Flow
	store     *session.Store
	notifier  *recordingNotifier
	navigator *recordingNavigator
	events    *eventLog
	requests  *requestCounter
}

type requestCounter struct {
	mu    sync.Mutex
	count int
}

func (c *requestCounter) inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func (c *requestCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// newTestFlow wires a Flow against an httptest auth service with a
// memory-backed session store and recording fakes. The store's publish
// is logged as "persist" so tests can assert side-effect ordering.
func newTestFlow(t *testing.T, handler http.HandlerFunc) *testHarness {
	t.Helper()

	events := &eventLog{}
	requests := &requestCounter{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.inc()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{events: events}
	navigator := &recordingNavigator{events: events}
	store := session.NewStore(session.NewMemoryBackend(), nil)
	store.Subscribe(func(s *session.Session) {
		if s != nil {
			events.append("persist")
		} else {
			events.append("clear")
		}
	})

	flow, err := New().
		WithBaseURL(srv.URL).
		WithSessionStore(store).
		WithNotifier(notifier).
		WithNavigator(navigator).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return &testHarness{
		flow:      flow,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		events:    events,
		requests:  requests,
	}
}

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// acceptingHandler answers every request the way the live service does
// on success: the session fields plus a message, top level.
func acceptingHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"_id":      "u1",
			"fullName": "Alice Example",
			"username": "alice",
			"email":    "a@b.com",
			"gender":   "female",
			"token":    "opaque-token",
			"message":  message,
		})
	}
}

// rejectingHandler answers with a well-formed denial.
func rejectingHandler(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, map[string]any{
			"success": false,
			"message": message,
		})
	}
}
