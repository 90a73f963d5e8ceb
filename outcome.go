package chatauth

// OutcomeKind tags the three-way result of an authentication attempt.
type OutcomeKind uint8

const (
	// OutcomeSuccess means the service accepted the attempt and returned a
	// session.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeRejected means the service answered with a well-formed denial
	// (bad credentials, duplicate username). Expected and user-facing, not
	// a fault.
	OutcomeRejected
	// OutcomeTransportError means the request failed in transit, timed
	// out, or the response body was malformed.
	OutcomeTransportError
)

// String returns the lowercase name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the normalized result of one login or register attempt.
//
// Session is non-nil only for OutcomeSuccess. Message carries the
// service-provided text verbatim for OutcomeSuccess and OutcomeRejected;
// for OutcomeTransportError it carries the service text when one was
// readable and the configured generic fallback otherwise.
type Outcome struct {
	Kind    OutcomeKind
	Session *Session
	Message string
}

func successOutcome(s *Session, message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Session: s, Message: message}
}

func rejectedOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: message}
}

func transportOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: message}
}
