package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

func TestResolveRoleArg(t *testing.T) {
	offered := []sdk.Role{sdk.RoleAdmin, sdk.RoleAuditor}

	tests := []struct {
		name    string
		value   string
		want    sdk.Role
		wantErr string
	}{
		{name: "exact match", value: "Admin", want: sdk.RoleAdmin},
		{name: "case insensitive", value: "auditor", want: sdk.RoleAuditor},
		{name: "unknown role", value: "manager", wantErr: `unknown role "manager"`},
		{name: "known but not offered", value: "Customer", wantErr: `role "Customer" is not offered for this account`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRoleArg(tt.value, offered)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
