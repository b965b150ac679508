package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/internal/config"
	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Store.Restore()
		if err != nil {
			pterm.Info.Println("Not logged in")
			return nil
		}

		identity := session.Identity
		pterm.DefaultSection.Println("Session")
		pterm.Info.Printf("User: %s <%s> (ID %d)\n", identity.Name, identity.Email, identity.UserID)
		pterm.Info.Printf("Active role: %s\n", identity.Role.Display())
		if identity.MultiRole() {
			names := make([]string, len(identity.Roles))
			for i, role := range identity.Roles {
				names[i] = role.Display()
			}
			pterm.Info.Printf("Assignable roles: %s\n", strings.Join(names, ", "))
		}
		if identity.ProviderName != "" {
			pterm.Info.Printf("Provider: %s\n", identity.ProviderName)
		}
		if expiry, ok := tokenExpiry(session.Token); ok {
			pterm.Info.Printf("Token expires: %s\n", expiry.Format(time.RFC1123))
		}

		outcome := cfg.Dispatcher.Probe(cmd.Context(), identity)
		switch outcome.Kind {
		case sdk.OutcomeAuthFailure:
			pterm.Warning.Println("Session is no longer valid and has been cleared; please login again.")
		case sdk.OutcomeRequestFailure:
			pterm.Warning.Printf("Could not verify session with the backend: %s\n", outcome.Message)
		default:
			pterm.Success.Println("Session verified with the backend.")
		}
		return nil
	},
}

// tokenExpiry decodes the bearer token's exp claim without verifying the
// signature; the client has no key material and only wants the timestamp
// for display.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
