package sdk

import "strings"

// Role is one of the fixed set of capability roles the backend authorizes
// independently. The backend serializes roles with underscores
// (e.g. "Invoice_Creator"), so the constants mirror the wire names.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleCustomer       Role = "Customer"
	RoleInvoiceCreator Role = "Invoice_Creator"
	RoleSuperCreator   Role = "Super_Creator"
	RoleAuditor        Role = "Auditor"
)

// Roles lists every known role in a stable order.
var Roles = []Role{RoleAdmin, RoleCustomer, RoleInvoiceCreator, RoleSuperCreator, RoleAuditor}

// roleProfile is the static per-role configuration: the probe endpoint used
// to validate a restored session, a short description for selection prompts,
// and the dashboard loaders issued after activation. Adding a role is a data
// change here, not a new switch arm elsewhere.
type roleProfile struct {
	probePath   func(id Identity) string
	description string
	loaders     []Loader
}

var roleProfiles = map[Role]roleProfile{
	RoleAdmin: {
		probePath:   func(Identity) string { return "/admin/users" },
		description: "Manage users, providers, and system settings",
		loaders:     []Loader{usersLoader, ownProviderLoader},
	},
	RoleCustomer: {
		probePath:   func(id Identity) string { return myInvoicesPath(id.UserID) },
		description: "View and manage your invoices",
		loaders:     []Loader{customerInvoicesLoader},
	},
	RoleInvoiceCreator: {
		probePath:   func(id Identity) string { return createdInvoicesPath(id.UserID) },
		description: "Create and manage invoices",
		loaders:     []Loader{creatorInvoicesLoader},
	},
	RoleSuperCreator: {
		probePath:   func(id Identity) string { return providerInvoicesPath(id.ProviderID) },
		description: "Full provider invoice management",
		loaders:     []Loader{providerInvoicesLoader},
	},
	RoleAuditor: {
		probePath:   func(id Identity) string { return auditInvoicesPath(id.UserID) },
		description: "Audit and review system data",
		loaders:     []Loader{auditorInvoicesLoader},
	},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleProfiles[r]
	return ok
}

// Display returns the role name with underscores replaced for human output.
func (r Role) Display() string {
	return strings.ReplaceAll(string(r), "_", " ")
}

// Description returns a short summary of what the role can do.
func (r Role) Description() string {
	return roleProfiles[r].description
}

// ProbePath returns the authenticated endpoint used to validate a restored
// session for this role. The second return is false for unknown roles.
func (r Role) ProbePath(id Identity) (string, bool) {
	profile, ok := roleProfiles[r]
	if !ok {
		return "", false
	}
	return profile.probePath(id), true
}

// ParseRole resolves user input ("Super_Creator", "super creator", ...) to a
// Role. The second return is false when no role matches.
func ParseRole(s string) (Role, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	for _, role := range Roles {
		if strings.EqualFold(string(role), normalized) {
			return role, true
		}
	}
	return "", false
}
