// Package sdk is the client-side session and authorization core for the
// Electricity Invoice Management backend. It authenticates a user, resolves
// which of possibly several roles the user acts under, maintains the bearer
// token session, and routes every request through role-aware outcome
// classification. Higher layers (the eimctl CLI, or any other consumer)
// talk to the backend exclusively through the Dispatcher and the typed
// Client built on top of it.
package sdk
