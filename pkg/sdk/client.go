package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Invoice-scope path builders shared by the typed client, the dashboard
// loader tables, and the per-role probe endpoints.
func myInvoicesPath(customerID int) string {
	return fmt.Sprintf("/invoices/my-invoices?customerId=%d", customerID)
}

func createdInvoicesPath(creatorID int) string {
	return fmt.Sprintf("/invoices/my-created?creatorId=%d", creatorID)
}

func providerInvoicesPath(providerID int) string {
	return fmt.Sprintf("/invoices/provider?providerId=%d", providerID)
}

func auditInvoicesPath(auditorID int) string {
	return fmt.Sprintf("/audit/invoices?auditorUserId=%d", auditorID)
}

// Client provides typed wrappers over the Dispatcher for the backend's
// REST surface. All methods return the classified error taxonomy:
// *AuthenticationError (session already destroyed), *AuthorizationError,
// or *RequestError.
type Client struct {
	dispatcher *Dispatcher
}

// NewClient creates a typed client over dispatcher.
func NewClient(dispatcher *Dispatcher) *Client {
	return &Client{dispatcher: dispatcher}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.dispatcher.Dispatch(ctx, http.MethodGet, endpoint, nil).Decode(out)
}

// ListUsers returns every user visible to the admin.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user, optionally with several assignable roles.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPost, "/admin/users", input)
	var user User
	if err := outcome.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProvider fetches one provider by ID.
func (c *Client) GetProvider(ctx context.Context, providerID int) (*Provider, error) {
	var provider Provider
	if err := c.get(ctx, fmt.Sprintf("/admin/providers/%d", providerID), &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// CreateProvider registers a new electricity provider.
func (c *Client) CreateProvider(ctx context.Context, input CreateProviderInput) (*Provider, error) {
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPost, "/admin/providers", input)
	var provider Provider
	if err := outcome.Decode(&provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// UpdateProviderPrice sets a provider's current kWh price; the backend
// records the previous price in the pricing history.
func (c *Client) UpdateProviderPrice(ctx context.Context, providerID int, newPrice float64) error {
	endpoint := fmt.Sprintf("/admin/providers/%d/price", providerID)
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPut, endpoint, map[string]float64{
		"newKwhPrice": newPrice,
	})
	return outcome.Err()
}

// MyInvoices lists the invoices billed to a customer.
func (c *Client) MyInvoices(ctx context.Context, customerID int) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.get(ctx, myInvoicesPath(customerID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CreatedInvoices lists the invoices a creator issued.
func (c *Client) CreatedInvoices(ctx context.Context, creatorID int) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.get(ctx, createdInvoicesPath(creatorID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ProviderInvoices lists every invoice issued under a provider.
func (c *Client) ProviderInvoices(ctx context.Context, providerID int) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.get(ctx, providerInvoicesPath(providerID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CreateInvoice issues a new invoice on behalf of creatorUserID.
func (c *Client) CreateInvoice(ctx context.Context, creatorUserID int, input CreateInvoiceInput) (*Invoice, error) {
	endpoint := fmt.Sprintf("/invoices?creatorUserId=%d", creatorUserID)
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPost, endpoint, input)
	var invoice Invoice
	if err := outcome.Decode(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice applies a partial update to an invoice.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID, updaterUserID int, input UpdateInvoiceInput) (*Invoice, error) {
	endpoint := fmt.Sprintf("/invoices/%d?updaterUserId=%d", invoiceID, updaterUserID)
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPut, endpoint, input)
	var invoice Invoice
	if err := outcome.Decode(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// AuditInvoices lists the invoices within the auditor's scope.
func (c *Client) AuditInvoices(ctx context.Context, auditorID int) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.get(ctx, auditInvoicesPath(auditorID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// SearchAuditInvoices finds audit-scoped invoices by invoice number.
func (c *Client) SearchAuditInvoices(ctx context.Context, auditorID int, invoiceNumber string) ([]Invoice, error) {
	endpoint := fmt.Sprintf("/audit/invoices/search?invoiceNumber=%s&auditorUserId=%d",
		url.QueryEscape(invoiceNumber), auditorID)
	var invoices []Invoice
	if err := c.get(ctx, endpoint, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// SearchAuditLogs finds the audit trail entries for an invoice number.
func (c *Client) SearchAuditLogs(ctx context.Context, auditorID int, invoiceNumber string) ([]AuditLog, error) {
	endpoint := fmt.Sprintf("/audit/logs/search?invoiceNumber=%s&auditorUserId=%d",
		url.QueryEscape(invoiceNumber), auditorID)
	var logs []AuditLog
	if err := c.get(ctx, endpoint, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// PricingHistory lists provider kWh price changes over time.
func (c *Client) PricingHistory(ctx context.Context, auditorID int) ([]PricingRecord, error) {
	endpoint := fmt.Sprintf("/audit/pricing-history?auditorUserId=%d", auditorID)
	var history []PricingRecord
	if err := c.get(ctx, endpoint, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Query runs a natural-language audit query through the backend's
// translation service and returns the rows it produced.
func (c *Client) Query(ctx context.Context, auditorID int, query string) (*QueryResult, error) {
	endpoint := fmt.Sprintf("/audit/query?auditorUserId=%d", auditorID)
	outcome := c.dispatcher.Dispatch(ctx, http.MethodPost, endpoint, map[string]string{
		"query": query,
	})
	var result QueryResult
	if err := outcome.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
