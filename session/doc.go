// Package session holds the authenticated session for the chat client:
// a single durable key whose presence means "signed in" and whose absence
// means "signed out".
//
// Store is the process-wide source of truth. It caches the current
// session in memory, persists every mutation through a pluggable Backend
// (file, Redis, in-memory), and publishes changes to subscribers
// synchronously, so a component observing auth state never has to poll.
//
// Load fails soft: absent or corrupt persisted state yields a nil
// session, never an error. Writers are the auth flow on success and an
// explicit logout; everything else is a reader.
package session
