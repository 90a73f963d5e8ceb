// Package chatauth implements the client side of the SnapTalk chat
// application's authentication flow: the sign-in and sign-up forms, the
// submission state machine behind them, and the durable session they
// establish on success.
//
// The package talks to the remote auth service as a black box. Credential
// payloads go out as JSON over HTTP, and every response (accepted, denied,
// or failed in transit) is normalized into a tagged [Outcome] so callers
// get exhaustive handling instead of duck-typed {success, message} bodies.
//
// # Architecture boundaries
//
// chatauth is the public surface. It exposes [Flow], [Builder], [Config],
// the two form controllers ([LoginForm], [RegisterForm]), and value types.
// Durable session state lives in the session subpackage behind a small
// backend interface (file, Redis, memory) so the persistence mechanism is
// swappable without touching a controller.
//
// # What this package must NOT do
//
//   - Validate credentials beyond the confirm-password gate; the service
//     re-validates everything.
//   - Hash passwords, issue tokens, or retry failed attempts. A failed
//     attempt surfaces immediately and the user re-initiates.
//   - Render anything. Notification and navigation are injected
//     capabilities ([Notifier], [Navigator]) supplied by the host UI.
//
// # Concurrency contract
//
// A form controller is owned by one UI event loop. The only suspension
// point is the in-flight HTTP call, and a single-flight guard rejects a
// second Submit while one is pending. The session store is the sole piece
// of shared state and is safe for concurrent readers.
package chatauth
