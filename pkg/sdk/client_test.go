package sdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

// recordingServer captures the last request and replies with a canned body.
type recordingServer struct {
	method string
	path   string
	body   []byte

	status   int
	response string
}

func (s *recordingServer) start(t *testing.T) *sdk.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.method = r.Method
		s.path = r.URL.RequestURI()
		s.body, _ = io.ReadAll(r.Body)
		status := s.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write([]byte(s.response))
	}))
	t.Cleanup(server.Close)

	store := activeStore(t, "tok", customerIdentity())
	return sdk.NewClient(sdk.NewDispatcher(server.URL, store))
}

func TestClient_ListUsers(t *testing.T) {
	server := &recordingServer{response: `[{"id":1,"name":"Amal Khalil","email":"a@x.com","roles":["Admin"]}]`}
	client := server.start(t)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Amal Khalil", users[0].Name)
	assert.Equal(t, "/admin/users", server.path)
	assert.Equal(t, http.MethodGet, server.method)
}

func TestClient_UpdateProviderPrice(t *testing.T) {
	server := &recordingServer{response: `{}`}
	client := server.start(t)

	require.NoError(t, client.UpdateProviderPrice(context.Background(), 2, 0.55))
	assert.Equal(t, http.MethodPut, server.method)
	assert.Equal(t, "/admin/providers/2/price", server.path)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(server.body, &body))
	assert.Equal(t, 0.55, body["newKwhPrice"])
}

func TestClient_CreateInvoice(t *testing.T) {
	server := &recordingServer{response: `{"id":10,"invoiceNumber":"INV-2025-0010","totalAmount":41.25}`}
	client := server.start(t)

	invoice, err := client.CreateInvoice(context.Background(), 5, sdk.CreateInvoiceInput{
		CustomerID:  3,
		KwhConsumed: 75,
		IssueDate:   "2025-06-01",
		DueDate:     "2025-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-0010", invoice.InvoiceNumber)
	assert.Equal(t, "/invoices?creatorUserId=5", server.path)
	assert.Equal(t, http.MethodPost, server.method)
}

func TestClient_UpdateInvoice(t *testing.T) {
	server := &recordingServer{response: `{"id":10,"invoiceNumber":"INV-2025-0010","paymentStatus":"Paid"}`}
	client := server.start(t)

	invoice, err := client.UpdateInvoice(context.Background(), 10, 5, sdk.UpdateInvoiceInput{
		PaymentStatus: sdk.PaymentPaid,
		PaymentDate:   "2025-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, sdk.PaymentPaid, invoice.PaymentStatus)
	assert.Equal(t, "/invoices/10?updaterUserId=5", server.path)

	// Partial update: unset fields are omitted, not zeroed.
	var body map[string]any
	require.NoError(t, json.Unmarshal(server.body, &body))
	assert.NotContains(t, body, "kwhConsumed")
	assert.NotContains(t, body, "dueDate")
	assert.Equal(t, "Paid", body["paymentStatus"])
}

func TestClient_SearchAuditLogs(t *testing.T) {
	server := &recordingServer{response: `[{"id":1,"action":"UPDATE","invoiceNumber":"INV 1"}]`}
	client := server.start(t)

	logs, err := client.SearchAuditLogs(context.Background(), 7, "INV 1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "UPDATE", logs[0].Action)
	assert.Equal(t, "/audit/logs/search?invoiceNumber=INV+1&auditorUserId=7", server.path)
}

func TestClient_Query(t *testing.T) {
	server := &recordingServer{response: `{
		"query": "total unpaid invoices",
		"generatedSql": "SELECT count(*) FROM invoices WHERE payment_status = 'Pending'",
		"rowCount": 1,
		"results": [{"count": 4}]
	}`}
	client := server.start(t)

	result, err := client.Query(context.Background(), 7, "total unpaid invoices")
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)
	assert.Contains(t, result.GeneratedSQL, "SELECT")
	assert.Equal(t, "/audit/query?auditorUserId=7", server.path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(server.body, &body))
	assert.Equal(t, "total unpaid invoices", body["query"])
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	server := &recordingServer{status: http.StatusForbidden, response: `{"message":"Only admins may list users"}`}
	client := server.start(t)

	_, err := client.ListUsers(context.Background())
	var authzErr *sdk.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "Only admins may list users", authzErr.Message)
}
