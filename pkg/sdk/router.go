package sdk

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Loader is one dashboard data-loading call: a stable name for rendering
// and a path builder over the active identity. A builder returning "" means
// the loader does not apply to this identity (e.g. an admin with no
// provider assignment) and is skipped.
type Loader struct {
	Name string
	path func(id Identity) string
}

var (
	usersLoader = Loader{
		Name: "users",
		path: func(Identity) string { return "/admin/users" },
	}
	ownProviderLoader = Loader{
		Name: "provider",
		path: func(id Identity) string {
			if id.ProviderID == 0 {
				return ""
			}
			return fmt.Sprintf("/admin/providers/%d", id.ProviderID)
		},
	}
	customerInvoicesLoader = Loader{
		Name: "invoices",
		path: func(id Identity) string { return myInvoicesPath(id.UserID) },
	}
	creatorInvoicesLoader = Loader{
		Name: "invoices",
		path: func(id Identity) string { return createdInvoicesPath(id.UserID) },
	}
	providerInvoicesLoader = Loader{
		Name: "invoices",
		path: func(id Identity) string { return providerInvoicesPath(id.ProviderID) },
	}
	auditorInvoicesLoader = Loader{
		Name: "invoices",
		path: func(id Identity) string { return auditInvoicesPath(id.UserID) },
	}
)

// LoaderResult pairs a loader with its classified outcome. Skipped loaders
// produce no result.
type LoaderResult struct {
	Loader  string
	Outcome Outcome
}

// Router maps the active role to the data-loading sequence its dashboard
// needs. It holds no state beyond the static per-role tables.
type Router struct {
	dispatcher *Dispatcher
}

// NewRouter creates a Router issuing loaders through dispatcher.
func NewRouter(dispatcher *Dispatcher) *Router {
	return &Router{dispatcher: dispatcher}
}

// Loaders returns the dashboard loader sequence for role, nil for unknown
// roles.
func (r *Router) Loaders(role Role) []Loader {
	profile, ok := roleProfiles[role]
	if !ok {
		return nil
	}
	return profile.loaders
}

// Activate issues every loader for the identity's active role and returns
// the results in table order. Loaders run concurrently; no ordering is
// guaranteed between dispatches. An authentication failure in any loader
// has already torn the session down by the time Activate returns.
func (r *Router) Activate(ctx context.Context, id Identity) ([]LoaderResult, error) {
	loaders := r.Loaders(id.Role)
	if loaders == nil {
		return nil, fmt.Errorf("no dashboard for role %q", id.Role)
	}

	type slot struct {
		loader string
		path   string
	}
	slots := make([]slot, 0, len(loaders))
	for _, loader := range loaders {
		path := loader.path(id)
		if path == "" {
			continue
		}
		slots = append(slots, slot{loader: loader.Name, path: path})
	}

	results := make([]LoaderResult, len(slots))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, s := range slots {
		group.Go(func() error {
			results[i] = LoaderResult{
				Loader:  s.loader,
				Outcome: r.dispatcher.Dispatch(groupCtx, http.MethodGet, s.path, nil),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
