package sdk

import (
	"encoding/json"
	"fmt"
)

// OutcomeKind classifies the result of one dispatched request.
type OutcomeKind int

const (
	// OutcomeSuccess carries the parsed response payload.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeAuthFailure is a 401-equivalent. The session has been
	// destroyed by the time the caller observes it.
	OutcomeAuthFailure
	// OutcomeForbidden is a 403-equivalent. The session is untouched.
	OutcomeForbidden
	// OutcomeRequestFailure covers every other non-2xx status and
	// transport-level failures.
	OutcomeRequestFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthFailure:
		return "authentication failure"
	case OutcomeForbidden:
		return "authorization failure"
	case OutcomeRequestFailure:
		return "request failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the classified result of one dispatched call. Payload is set
// only for OutcomeSuccess; Message only for the failure kinds.
type Outcome struct {
	Kind    OutcomeKind
	Payload json.RawMessage
	Message string
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Decode unmarshals the success payload into v. Empty payloads (HEAD
// responses, 204s) leave v untouched.
func (o Outcome) Decode(v any) error {
	if !o.OK() {
		return o.Err()
	}
	if len(o.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(o.Payload, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Err converts a failure outcome into its typed error; nil for success.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeAuthFailure:
		return &AuthenticationError{Message: o.Message}
	case OutcomeForbidden:
		return &AuthorizationError{Message: o.Message}
	default:
		return &RequestError{Message: o.Message}
	}
}

func successOutcome(payload json.RawMessage) Outcome {
	return Outcome{Kind: OutcomeSuccess, Payload: payload}
}

func failureOutcome(kind OutcomeKind, message string) Outcome {
	return Outcome{Kind: kind, Message: message}
}
