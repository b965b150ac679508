package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Dispatcher wraps every backend call with the current bearer credential
// and classifies the HTTP-level result into an Outcome. It is the only
// component besides the Resolver that mutates the session store, and its
// only mutation is the teardown on an authentication failure.
//
// The dispatcher never retries; retry policy, if any, belongs to callers.
type Dispatcher struct {
	baseURL string
	httpCli *http.Client
	store   SessionStore
	logger  *slog.Logger
}

// DispatcherOption mutates Dispatcher construction.
type DispatcherOption func(*Dispatcher)

// WithHTTPClient overrides the HTTP client used for backend calls.
func WithHTTPClient(client *http.Client) DispatcherOption {
	return func(d *Dispatcher) {
		d.httpCli = client
	}
}

// WithLogger attaches a structured logger for request tracing. Without one
// the dispatcher stays silent.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a Dispatcher for the API at baseURL (e.g.
// "http://localhost:8081/api") backed by the given session store.
func NewDispatcher(baseURL string, store SessionStore, optFns ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
	}
	for _, fn := range optFns {
		fn(d)
	}
	if d.httpCli == nil {
		d.httpCli = http.DefaultClient
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	return d
}

// Store exposes the session store the dispatcher mutates on auth failures.
func (d *Dispatcher) Store() SessionStore {
	return d.store
}

// Dispatch issues one call against the backend and classifies the result.
// A JSON body is encoded when body is non-nil. The bearer credential is
// re-read from the session store on every call, so a role switch completing
// between two dispatches is observed by the second.
func (d *Dispatcher) Dispatch(ctx context.Context, method, endpoint string, body any) Outcome {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failureOutcome(OutcomeRequestFailure, fmt.Sprintf("encoding request: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+endpoint, reqBody)
	if err != nil {
		return failureOutcome(OutcomeRequestFailure, fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, ok := d.bearerToken(); ok {
		token.SetAuthHeader(req)
		d.logger.Debug("dispatching authenticated request", "method", method, "endpoint", endpoint)
	} else {
		d.logger.Debug("dispatching unauthenticated request", "method", method, "endpoint", endpoint)
	}

	resp, err := d.httpCli.Do(req)
	if err != nil {
		d.logger.Debug("transport failure", "endpoint", endpoint, "error", err)
		return failureOutcome(OutcomeRequestFailure, msgNetworkError)
	}
	defer resp.Body.Close()

	return d.classify(resp, endpoint)
}

// Probe issues the side-effect-free validity check for a restored session:
// a HEAD request to the role's configured probe endpoint. The response body
// is ignored; only the outcome classification matters.
func (d *Dispatcher) Probe(ctx context.Context, id Identity) Outcome {
	path, ok := id.Role.ProbePath(id)
	if !ok {
		return failureOutcome(OutcomeRequestFailure, fmt.Sprintf("unknown role %q", id.Role))
	}
	return d.Dispatch(ctx, http.MethodHead, path, nil)
}

// bearerToken builds the oauth2 token for the live session. It returns
// false when no session is current or the stored token is the "no-token"
// sentinel, in which case the call goes out unauthenticated.
func (d *Dispatcher) bearerToken() (*oauth2.Token, bool) {
	session := d.store.Current()
	if session == nil || session.Token == "" || session.Token == NoToken {
		return nil, false
	}
	return &oauth2.Token{AccessToken: session.Token, TokenType: "Bearer"}, true
}

func (d *Dispatcher) classify(resp *http.Response, endpoint string) Outcome {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return failureOutcome(OutcomeRequestFailure, fmt.Sprintf("reading response: %v", err))
		}
		return successOutcome(payload)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		message := d.errorMessage(resp, msgSessionExpired)
		d.logger.Debug("authentication failure, clearing session", "endpoint", endpoint)
		if err := d.store.Clear(); err != nil {
			d.logger.Debug("session clear failed", "error", err)
		}
		return failureOutcome(OutcomeAuthFailure, message)
	case http.StatusForbidden:
		return failureOutcome(OutcomeForbidden, d.errorMessage(resp, msgAccessDenied))
	default:
		fallback := fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		return failureOutcome(OutcomeRequestFailure, d.errorMessage(resp, fallback))
	}
}

// errorMessage extracts the server-supplied {"message": ...} body, degrading
// to the per-class fallback when the body is absent or malformed.
func (d *Dispatcher) errorMessage(resp *http.Response, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		d.logger.Debug("unparseable error body", "status", resp.StatusCode, "error", err)
		return fallback
	}
	if body.Message == "" {
		return fallback
	}
	return body.Message
}
