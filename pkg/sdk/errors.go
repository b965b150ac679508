package sdk

// Fallback messages used when the backend returns no parseable error body.
const (
	msgSessionExpired = "Session expired. Please login again."
	msgAccessDenied   = "Access denied. You do not have permission to perform this action."
	msgNetworkError   = "Network error. Please check your connection."
)

// AuthenticationError reports an invalid or expired credential. By the time
// a caller sees one, the session store has already been cleared; the only
// sensible reaction is to route the user back to login. Never retry.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError reports that the active role lacks permission for the
// attempted operation. The session is untouched and remains valid.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// RequestError covers every other backend or transport failure: validation
// rejections, server errors, unreachable network. No session impact.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// ValidationError reports a request rejected locally before any network
// call, such as switching to a role the identity does not hold.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
