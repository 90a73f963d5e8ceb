package session

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrCorrupt is returned by Decode when the persisted blob is not a JSON
// object. Store.Load swallows it and reports "no session".
var ErrCorrupt = errors.New("session blob corrupt")

// Session is the record the auth service returns on a successful login or
// registration. The typed fields are the ones the chat client reads;
// Raw preserves the full response body so server fields this client does
// not know about survive a persist/reload round trip.
type Session struct {
	UserID     string `json:"_id"`
	FullName   string `json:"fullName"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Gender     string `json:"gender"`
	ProfilePic string `json:"profilePic"`
	Token      string `json:"token"`

	Raw json.RawMessage `json:"-"`
}

// Decode parses a persisted or server-supplied session blob. The input is
// retained as Raw on the returned session.
func Decode(data []byte) (*Session, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrCorrupt
	}
	var s Session
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, ErrCorrupt
	}
	s.Raw = append(json.RawMessage(nil), trimmed...)
	return &s, nil
}

// Encode serializes a session for persistence. When the session came from
// the wire, the original body is written back verbatim; a hand-built
// session falls back to marshaling the typed fields.
func Encode(s *Session) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil session")
	}
	if len(s.Raw) > 0 {
		return append([]byte(nil), s.Raw...), nil
	}
	return json.Marshal(s)
}
