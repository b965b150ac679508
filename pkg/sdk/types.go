package sdk

// Wire types for the backend surfaces the client consumes. Date fields stay
// strings because the backend serializes LocalDate/LocalDateTime values
// without zone offsets.

// User is a backend user record as returned by /admin/users.
type User struct {
	UserID   int       `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Address  string    `json:"address,omitempty"`
	Phone    string    `json:"phoneNumber,omitempty"`
	Provider *Provider `json:"provider,omitempty"`
}

// Provider is an electricity provider record.
type Provider struct {
	ProviderID      int     `json:"providerId"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	Email           string  `json:"email"`
	Phone           string  `json:"phoneNumber,omitempty"`
	CurrentKwhPrice float64 `json:"currentKwhPrice"`
}

// PaymentStatus is the invoice payment lifecycle state.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "Paid"
	PaymentPending   PaymentStatus = "Pending"
	PaymentOverdue   PaymentStatus = "Overdue"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// Invoice is a billing invoice with its related records inlined the way the
// backend nests them.
type Invoice struct {
	InvoiceID     int            `json:"invoiceId"`
	InvoiceNumber string         `json:"invoiceNumber"`
	Customer      *User          `json:"customer,omitempty"`
	Provider      *Provider      `json:"provider,omitempty"`
	CreatedBy     *User          `json:"createdByUser,omitempty"`
	KwhConsumed   float64        `json:"kwhConsumed"`
	Pricing       *PricingRecord `json:"pricing,omitempty"`
	TotalAmount   float64        `json:"totalAmount"`
	IssueDate     string         `json:"issueDate,omitempty"`
	DueDate       string         `json:"dueDate,omitempty"`
	PaymentDate   string         `json:"paymentDate,omitempty"`
	PaymentStatus PaymentStatus  `json:"paymentStatus,omitempty"`
}

// AuditLog is one audit trail entry for an invoice action.
type AuditLog struct {
	AuditID     int      `json:"auditId"`
	Invoice     *Invoice `json:"invoice,omitempty"`
	Action      string   `json:"action"`
	PerformedBy *User    `json:"performedByUser,omitempty"`
	PerformedAt string   `json:"performedAt,omitempty"`
}

// PricingRecord is one entry of a provider's kWh pricing history.
type PricingRecord struct {
	KwhPrice  float64 `json:"kwhPrice"`
	ValidFrom string  `json:"validFrom,omitempty"`
	ValidTo   string  `json:"validTo,omitempty"`
	ChangedBy *User   `json:"changedByUser,omitempty"`
}

// QueryResult is the backend's answer to a natural-language audit query.
// The translation itself is an opaque backend service; the client only
// renders what comes back.
type QueryResult struct {
	Query        string           `json:"query"`
	GeneratedSQL string           `json:"generatedSQL"`
	RowCount     int              `json:"rowCount"`
	Results      []map[string]any `json:"results"`
}

// CreateUserInput creates a user; Roles lets an admin assign several.
type CreateUserInput struct {
	ProviderID int    `json:"providerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phoneNumber,omitempty"`
	Roles      []Role `json:"roles,omitempty"`
}

// CreateProviderInput creates a provider with its initial kWh price.
type CreateProviderInput struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	Email           string  `json:"email"`
	Phone           string  `json:"phoneNumber"`
	CurrentKwhPrice float64 `json:"currentKwhPrice"`
}

// CreateInvoiceInput creates an invoice for a customer.
type CreateInvoiceInput struct {
	CustomerID  int     `json:"customerId"`
	KwhConsumed float64 `json:"kwhConsumed"`
	IssueDate   string  `json:"issueDate"`
	DueDate     string  `json:"dueDate"`
}

// UpdateInvoiceInput is a partial invoice update; zero-valued fields are
// omitted and left unchanged by the backend.
type UpdateInvoiceInput struct {
	KwhConsumed   float64       `json:"kwhConsumed,omitempty"`
	DueDate       string        `json:"dueDate,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentDate   string        `json:"paymentDate,omitempty"`
}
