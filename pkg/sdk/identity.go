package sdk

// Identity is the authenticated-identity record held alongside the bearer
// token. Role is the currently active role; Roles lists every role the
// backend offered at login.
type Identity struct {
	UserID       int    `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Roles        []Role `json:"roles,omitempty"`
	ProviderID   int    `json:"providerId,omitempty"`
	ProviderName string `json:"providerName,omitempty"`
}

// HasRole reports whether role is assignable to this identity. The active
// role always counts, so single-role identities with an empty Roles slice
// behave consistently.
func (id Identity) HasRole(role Role) bool {
	if role == id.Role && role != "" {
		return true
	}
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// MultiRole reports whether the identity can act under more than one role.
func (id Identity) MultiRole() bool {
	return len(id.Roles) > 1
}
