package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func nameOf(u *sdk.User) string {
	if u == nil {
		return "-"
	}
	return u.Name
}

// Invoices renders an invoice listing.
func Invoices(w io.Writer, invoices []sdk.Invoice) {
	if len(invoices) == 0 {
		fmt.Fprintln(w, "No invoices found.")
		return
	}
	table := NewTableWithWriter(w, []string{
		"Invoice #", "Customer", "Provider", "Created By", "kWh", "Total", "Issue Date", "Due Date", "Status",
	})
	for _, inv := range invoices {
		provider := "-"
		if inv.Provider != nil {
			provider = inv.Provider.Name
		}
		table.AddRow([]string{
			orDash(inv.InvoiceNumber),
			nameOf(inv.Customer),
			provider,
			nameOf(inv.CreatedBy),
			strconv.FormatFloat(inv.KwhConsumed, 'f', -1, 64),
			strconv.FormatFloat(inv.TotalAmount, 'f', 2, 64),
			orDash(inv.IssueDate),
			orDash(inv.DueDate),
			orDash(string(inv.PaymentStatus)),
		})
	}
	table.Render()
}

// Users renders a user listing.
func Users(w io.Writer, users []sdk.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	table := NewTableWithWriter(w, []string{"ID", "Name", "Email", "Role", "Provider"})
	for _, u := range users {
		provider := "No Provider"
		if u.Provider != nil {
			provider = u.Provider.Name
		}
		table.AddRow([]string{
			strconv.Itoa(u.UserID), u.Name, u.Email, u.Role.Display(), provider,
		})
	}
	table.Render()
}

// ProviderDetails renders a single provider record.
func ProviderDetails(w io.Writer, p sdk.Provider) {
	table := NewTableWithWriter(w, []string{"ID", "Name", "City", "Email", "Current kWh Price"})
	table.AddRow([]string{
		strconv.Itoa(p.ProviderID), p.Name, p.City, p.Email,
		strconv.FormatFloat(p.CurrentKwhPrice, 'f', -1, 64),
	})
	table.Render()
}

// AuditLogs renders audit trail entries.
func AuditLogs(w io.Writer, logs []sdk.AuditLog) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No audit logs found.")
		return
	}
	table := NewTableWithWriter(w, []string{"ID", "Invoice #", "Action", "Performed By", "Date"})
	for _, log := range logs {
		invoice := "-"
		if log.Invoice != nil {
			invoice = log.Invoice.InvoiceNumber
		}
		table.AddRow([]string{
			strconv.Itoa(log.AuditID), invoice, log.Action, nameOf(log.PerformedBy), orDash(log.PerformedAt),
		})
	}
	table.Render()
}

// PricingHistory renders provider price changes.
func PricingHistory(w io.Writer, history []sdk.PricingRecord) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No pricing history found.")
		return
	}
	table := NewTableWithWriter(w, []string{"Changed By", "Price/kWh", "Valid From", "Valid To", "Status"})
	for _, record := range history {
		status := "Active"
		validTo := "Current"
		if record.ValidTo != "" {
			status = "Expired"
			validTo = record.ValidTo
		}
		table.AddRow([]string{
			nameOf(record.ChangedBy),
			strconv.FormatFloat(record.KwhPrice, 'f', -1, 64),
			orDash(record.ValidFrom),
			validTo,
			status,
		})
	}
	table.Render()
}

// QueryResult renders the rows of a natural-language audit query with
// column order stable across rows.
func QueryResult(w io.Writer, result sdk.QueryResult) {
	fmt.Fprintf(w, "Query: %s\n", result.Query)
	fmt.Fprintf(w, "Generated SQL: %s\n", result.GeneratedSQL)
	fmt.Fprintf(w, "Rows: %d\n", result.RowCount)
	if len(result.Results) == 0 {
		return
	}

	columns := make([]string, 0, len(result.Results[0]))
	for column := range result.Results[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	table := NewTableWithWriter(w, columns)
	for _, row := range result.Results {
		cells := make([]string, len(columns))
		for i, column := range columns {
			value := row[column]
			if value == nil {
				cells[i] = "null"
				continue
			}
			cells[i] = fmt.Sprintf("%v", value)
		}
		table.AddRow(cells)
	}
	table.Render()
}
