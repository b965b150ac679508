package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

func activeStore(t *testing.T, token string, identity sdk.Identity) sdk.SessionStore {
	t.Helper()
	store := sdk.NewMemoryStore()
	require.NoError(t, store.Commit(&sdk.Session{Token: token, Identity: identity}))
	return store
}

func customerIdentity() sdk.Identity {
	return sdk.Identity{
		UserID: 3,
		Name:   "Lina Hasan",
		Email:  "lina@example.com",
		Role:   sdk.RoleCustomer,
		Roles:  []sdk.Role{sdk.RoleCustomer},
	}
}

func TestDispatcher_Classification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    sdk.OutcomeKind
		wantMessage string
	}{
		{
			name:     "2xx is success",
			status:   http.StatusOK,
			body:     `{"ok":true}`,
			wantKind: sdk.OutcomeSuccess,
		},
		{
			name:     "204 is success with empty payload",
			status:   http.StatusNoContent,
			wantKind: sdk.OutcomeSuccess,
		},
		{
			name:        "401 with server message",
			status:      http.StatusUnauthorized,
			body:        `{"message":"Token has been invalidated"}`,
			wantKind:    sdk.OutcomeAuthFailure,
			wantMessage: "Token has been invalidated",
		},
		{
			name:        "401 with malformed body falls back",
			status:      http.StatusUnauthorized,
			body:        `<html>gateway error</html>`,
			wantKind:    sdk.OutcomeAuthFailure,
			wantMessage: "Session expired. Please login again.",
		},
		{
			name:        "403 with server message",
			status:      http.StatusForbidden,
			body:        `{"message":"Auditors cannot modify invoices"}`,
			wantKind:    sdk.OutcomeForbidden,
			wantMessage: "Auditors cannot modify invoices",
		},
		{
			name:        "403 without message falls back",
			status:      http.StatusForbidden,
			body:        `{}`,
			wantKind:    sdk.OutcomeForbidden,
			wantMessage: "Access denied. You do not have permission to perform this action.",
		},
		{
			name:        "500 falls back to status text",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantKind:    sdk.OutcomeRequestFailure,
			wantMessage: "Request failed with status 500",
		},
		{
			name:        "400 carries server message",
			status:      http.StatusBadRequest,
			body:        `{"message":"kWh consumed must be positive"}`,
			wantKind:    sdk.OutcomeRequestFailure,
			wantMessage: "kWh consumed must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			store := activeStore(t, "token-1", customerIdentity())
			d := sdk.NewDispatcher(server.URL, store)

			outcome := d.Dispatch(context.Background(), http.MethodGet, "/invoices/my-invoices?customerId=3", nil)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, outcome.Message)
			}
		})
	}
}

func TestDispatcher_BearerCredential(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("attaches current token", func(t *testing.T) {
		store := activeStore(t, "jwt-abc", customerIdentity())
		d := sdk.NewDispatcher(server.URL, store)
		d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
		assert.Equal(t, "Bearer jwt-abc", gotAuth)
	})

	t.Run("no session means no header", func(t *testing.T) {
		d := sdk.NewDispatcher(server.URL, sdk.NewMemoryStore())
		d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
		assert.Empty(t, gotAuth)
	})

	t.Run("no-token sentinel is never attached", func(t *testing.T) {
		store := activeStore(t, sdk.NoToken, customerIdentity())
		d := sdk.NewDispatcher(server.URL, store)
		d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
		assert.Empty(t, gotAuth)
	})

	t.Run("token is re-read on every dispatch", func(t *testing.T) {
		store := activeStore(t, "first", customerIdentity())
		d := sdk.NewDispatcher(server.URL, store)

		d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
		assert.Equal(t, "Bearer first", gotAuth)

		require.NoError(t, store.Commit(&sdk.Session{Token: "second", Identity: customerIdentity()}))
		d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
		assert.Equal(t, "Bearer second", gotAuth)
	})
}

func TestDispatcher_AuthFailureClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Session expired. Please login again."}`))
	}))
	defer server.Close()

	store := activeStore(t, "stale", customerIdentity())
	d := sdk.NewDispatcher(server.URL, store)

	outcome := d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
	assert.Equal(t, sdk.OutcomeAuthFailure, outcome.Kind)
	assert.Nil(t, store.Current(), "session must be destroyed on authentication failure")

	var authErr *sdk.AuthenticationError
	require.ErrorAs(t, outcome.Err(), &authErr)
}

func TestDispatcher_ForbiddenLeavesSessionIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Access denied"}`))
	}))
	defer server.Close()

	before := &sdk.Session{Token: "valid", Identity: customerIdentity()}
	store := sdk.NewMemoryStore()
	require.NoError(t, store.Commit(before))
	d := sdk.NewDispatcher(server.URL, store)

	outcome := d.Dispatch(context.Background(), http.MethodGet, "/admin/users", nil)
	assert.Equal(t, sdk.OutcomeForbidden, outcome.Kind)
	assert.Same(t, before, store.Current(), "authorization failure must not touch the session")

	var authzErr *sdk.AuthorizationError
	require.ErrorAs(t, outcome.Err(), &authzErr)
}

func TestDispatcher_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	store := activeStore(t, "tok", customerIdentity())
	d := sdk.NewDispatcher(server.URL, store)

	outcome := d.Dispatch(context.Background(), http.MethodGet, "/x", nil)
	assert.Equal(t, sdk.OutcomeRequestFailure, outcome.Kind)
	assert.Equal(t, "Network error. Please check your connection.", outcome.Message)
	assert.NotNil(t, store.Current(), "transport failures must not destroy the session")
}

func TestDispatcher_Probe(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := activeStore(t, "tok", customerIdentity())
	d := sdk.NewDispatcher(server.URL, store)

	outcome := d.Probe(context.Background(), customerIdentity())
	assert.True(t, outcome.OK())
	assert.Equal(t, http.MethodHead, gotMethod)
	assert.Equal(t, "/invoices/my-invoices?customerId=3", gotPath)

	outcome = d.Probe(context.Background(), sdk.Identity{Role: sdk.Role("Ghost")})
	assert.Equal(t, sdk.OutcomeRequestFailure, outcome.Kind)
}
