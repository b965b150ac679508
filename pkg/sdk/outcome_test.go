package sdk_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

func TestOutcome_Decode(t *testing.T) {
	t.Run("decodes success payload", func(t *testing.T) {
		outcome := sdk.Outcome{Kind: sdk.OutcomeSuccess, Payload: json.RawMessage(`{"userId":7}`)}
		var got struct {
			UserID int `json:"userId"`
		}
		require.NoError(t, outcome.Decode(&got))
		assert.Equal(t, 7, got.UserID)
	})

	t.Run("empty payload leaves target untouched", func(t *testing.T) {
		outcome := sdk.Outcome{Kind: sdk.OutcomeSuccess}
		got := 42
		require.NoError(t, outcome.Decode(&got))
		assert.Equal(t, 42, got)
	})

	t.Run("failure outcome surfaces its typed error", func(t *testing.T) {
		outcome := sdk.Outcome{Kind: sdk.OutcomeForbidden, Message: "Access denied"}
		var got any
		err := outcome.Decode(&got)
		var authzErr *sdk.AuthorizationError
		require.ErrorAs(t, err, &authzErr)
	})
}

func TestOutcome_Err(t *testing.T) {
	tests := []struct {
		name    string
		outcome sdk.Outcome
		check   func(t *testing.T, err error)
	}{
		{
			name:    "success is nil",
			outcome: sdk.Outcome{Kind: sdk.OutcomeSuccess},
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "auth failure",
			outcome: sdk.Outcome{Kind: sdk.OutcomeAuthFailure, Message: "expired"},
			check: func(t *testing.T, err error) {
				var e *sdk.AuthenticationError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "expired", e.Message)
			},
		},
		{
			name:    "forbidden",
			outcome: sdk.Outcome{Kind: sdk.OutcomeForbidden, Message: "denied"},
			check: func(t *testing.T, err error) {
				var e *sdk.AuthorizationError
				require.ErrorAs(t, err, &e)
			},
		},
		{
			name:    "request failure",
			outcome: sdk.Outcome{Kind: sdk.OutcomeRequestFailure, Message: "boom"},
			check: func(t *testing.T, err error) {
				var e *sdk.RequestError
				require.ErrorAs(t, err, &e)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.outcome.Err())
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := sdk.NewMemoryStore()

	_, err := store.Restore()
	assert.ErrorIs(t, err, sdk.ErrNoSession)
	assert.Nil(t, store.Current())

	session := &sdk.Session{Token: "tok", Identity: sdk.Identity{UserID: 1, Role: sdk.RoleAdmin}}
	require.NoError(t, store.Commit(session))
	assert.Same(t, session, store.Current())

	// No durable backing: a restart would start from scratch.
	_, err = store.Restore()
	assert.ErrorIs(t, err, sdk.ErrNoSession)

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())
	require.NoError(t, store.Clear())
}
