package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// State is the Resolver's position in the login lifecycle.
type State int

const (
	// StateUnauthenticated means no session exists.
	StateUnauthenticated State = iota
	// StateCredentialed means the backend accepted the credentials but the
	// login has not yet resolved to a role. Login passes through it on the
	// way to RoleAmbiguous or Active.
	StateCredentialed
	// StateRoleAmbiguous means the identity holds several roles and no
	// token is issued until one is selected.
	StateRoleAmbiguous
	// StateActive means a session with a resolved role is committed.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateCredentialed:
		return "credentialed"
	case StateRoleAmbiguous:
		return "role-ambiguous"
	case StateActive:
		return "active"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// loginResponse is the wire shape shared by /auth/login, /auth/select-role
// and /auth/switch-role.
type loginResponse struct {
	Token                 string `json:"token"`
	Type                  string `json:"type"`
	UserID                int    `json:"userId"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Roles                 []Role `json:"roles"`
	SelectedRole          Role   `json:"selectedRole"`
	ProviderID            int    `json:"providerId"`
	ProviderName          string `json:"providerName"`
	RequiresRoleSelection bool   `json:"requiresRoleSelection"`
}

func (lr loginResponse) identity() Identity {
	return Identity{
		UserID:       lr.UserID,
		Name:         lr.Name,
		Email:        lr.Email,
		Role:         lr.SelectedRole,
		Roles:        lr.Roles,
		ProviderID:   lr.ProviderID,
		ProviderName: lr.ProviderName,
	}
}

// LoginResult is what Login resolved to. When NeedsRoleSelection is true
// the resolver holds Identity (with the offered Roles and no token) and
// Session is nil until SelectRole succeeds.
type LoginResult struct {
	NeedsRoleSelection bool
	Identity           Identity
	Session            *Session
}

// Resolver drives the login lifecycle: it authenticates credentials,
// resolves which role the identity acts under, and maintains the committed
// session through role switches and logout. It mutates the session only
// through the store's own operations.
type Resolver struct {
	dispatcher *Dispatcher
	store      SessionStore
	state      State
	pending    *Identity // held while StateRoleAmbiguous
}

// NewResolver creates a Resolver over the dispatcher's session store. If a
// session is already current (e.g. installed by Restore) the resolver
// starts Active.
func NewResolver(dispatcher *Dispatcher) *Resolver {
	r := &Resolver{
		dispatcher: dispatcher,
		store:      dispatcher.Store(),
	}
	if r.store.Current() != nil {
		r.state = StateActive
	}
	return r
}

// State returns the resolver's current lifecycle state.
func (r *Resolver) State() State {
	return r.state
}

// PendingIdentity returns the partial identity held while a role selection
// is pending, or nil.
func (r *Resolver) PendingIdentity() *Identity {
	if r.pending == nil {
		return nil
	}
	id := *r.pending
	return &id
}

// Login authenticates email/password against the backend. Single-role
// identities transition straight to Active with a committed session;
// multi-role identities transition to RoleAmbiguous and hold no token until
// SelectRole. Login is permitted from any state and replaces an existing
// session on success.
func (r *Resolver) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	outcome := r.dispatcher.Dispatch(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if !outcome.OK() {
		r.observe(outcome)
		return nil, outcome.Err()
	}

	var resp loginResponse
	if err := outcome.Decode(&resp); err != nil {
		return nil, &RequestError{Message: err.Error()}
	}

	r.state = StateCredentialed
	identity := resp.identity()

	if resp.RequiresRoleSelection {
		r.pending = &identity
		r.state = StateRoleAmbiguous
		return &LoginResult{NeedsRoleSelection: true, Identity: identity}, nil
	}

	session := &Session{Token: resp.Token, Identity: identity}
	r.commit(session)
	return &LoginResult{Identity: identity, Session: session}, nil
}

// SelectRole exchanges the role chosen after an ambiguous login for a
// token. Valid only from RoleAmbiguous; a role outside the offered set is
// rejected locally before any network call.
func (r *Resolver) SelectRole(ctx context.Context, role Role) (*Session, error) {
	if r.state != StateRoleAmbiguous {
		return nil, &ValidationError{Message: "no role selection is pending"}
	}
	if !r.pending.HasRole(role) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid role %q", role)}
	}

	endpoint := fmt.Sprintf("/auth/select-role?userId=%d", r.pending.UserID)
	outcome := r.dispatcher.Dispatch(ctx, http.MethodPost, endpoint, map[string]Role{
		"selectedRole": role,
	})
	if !outcome.OK() {
		r.observe(outcome)
		return nil, outcome.Err()
	}

	session, err := sessionFromResponse(outcome, role)
	if err != nil {
		return nil, err
	}
	r.commit(session)
	return session, nil
}

// SwitchRole exchanges the current token for one scoped to role. Valid only
// from Active and only for roles the identity holds. Switching to the
// already-active role is a no-op success with no network call. A failed
// switch leaves the prior session untouched, except that a 401 tears the
// session down like any other authentication failure.
func (r *Resolver) SwitchRole(ctx context.Context, role Role) (*Session, error) {
	if r.state != StateActive {
		return nil, &ValidationError{Message: "no active session to switch roles on"}
	}
	current := r.store.Current()
	if current == nil {
		r.state = StateUnauthenticated
		return nil, &ValidationError{Message: "no active session to switch roles on"}
	}
	if role == current.Identity.Role {
		return current, nil
	}
	if !current.Identity.HasRole(role) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid role %q", role)}
	}

	endpoint := fmt.Sprintf("/auth/switch-role?userId=%d", current.Identity.UserID)
	outcome := r.dispatcher.Dispatch(ctx, http.MethodPost, endpoint, map[string]Role{
		"selectedRole": role,
	})
	if !outcome.OK() {
		r.observe(outcome)
		return nil, outcome.Err()
	}

	session, err := sessionFromResponse(outcome, role)
	if err != nil {
		return nil, err
	}
	r.commit(session)
	return session, nil
}

// Logout clears the session store and returns to Unauthenticated. Valid
// from any state.
func (r *Resolver) Logout() error {
	r.pending = nil
	r.state = StateUnauthenticated
	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Restore loads a persisted session and validates it with the role's probe
// endpoint. No persisted session yields (nil, nil). A 401-equivalent on the
// probe clears the session and returns the authentication error so the
// caller routes to login. Any other probe outcome — including an
// unreachable backend — treats the session as provisionally valid: the
// user gets to work rather than being blocked on a dead network.
func (r *Resolver) Restore(ctx context.Context) (*Session, error) {
	session, err := r.store.Restore()
	if err != nil {
		r.state = StateUnauthenticated
		return nil, nil
	}

	outcome := r.dispatcher.Probe(ctx, session.Identity)
	if outcome.Kind == OutcomeAuthFailure {
		r.state = StateUnauthenticated
		return nil, outcome.Err()
	}

	r.state = StateActive
	return session, nil
}

// observe re-syncs resolver state after a failed dispatch: an
// authentication failure means the dispatcher already destroyed the
// session, so any pending or active state is gone with it.
func (r *Resolver) observe(outcome Outcome) {
	if outcome.Kind == OutcomeAuthFailure {
		r.pending = nil
		r.state = StateUnauthenticated
	}
}

func (r *Resolver) commit(session *Session) {
	r.pending = nil
	r.state = StateActive
	// Best-effort persistence: the in-memory session stays live even when
	// durable storage fails, so the commit error is not surfaced.
	_ = r.store.Commit(session)
}

// sessionFromResponse validates a role-exchange response and builds the
// session it describes. The backend echoes the selected role; a mismatch
// means the response is malformed and the prior session must survive.
func sessionFromResponse(outcome Outcome, want Role) (*Session, error) {
	var resp loginResponse
	if err := outcome.Decode(&resp); err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.Token == "" || resp.SelectedRole != want {
		return nil, &RequestError{Message: "malformed role exchange response"}
	}
	return &Session{Token: resp.Token, Identity: resp.identity()}, nil
}
