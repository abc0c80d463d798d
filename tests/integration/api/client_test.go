package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kitnetmanager/kitnet-client/internal/api"
	"github.com/kitnetmanager/kitnet-client/internal/domain"
	"github.com/kitnetmanager/kitnet-client/internal/session"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
	"github.com/kitnetmanager/kitnet-client/pkg/response"
)

const testToken = "test-token-abc"

// fakeBackend is an httptest server speaking the backend's envelope
type fakeBackend struct {
	server  *httptest.Server
	router  *mux.Router
	payment domain.Payment
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		router: mux.NewRouter(),
		payment: domain.Payment{
			ID:          uuid.New(),
			LeaseID:     uuid.New(),
			Amount:      decimal.NewFromFloat(850.00),
			DueDate:     domain.NewDate(2024, 5, 1),
			Status:      domain.PaymentStatusOverdue,
			PaymentType: domain.PaymentTypeRent,
		},
	}

	b.router.HandleFunc("/api/v1/auth/login", b.handleLogin).Methods("POST")
	b.router.HandleFunc("/api/v1/payments/overdue", b.requireAuth(b.handleOverdue)).Methods("GET")
	b.router.HandleFunc("/api/v1/payments/{id}", b.requireAuth(b.handleGetPayment)).Methods("GET")
	b.router.HandleFunc("/api/v1/payments/{id}/pay", b.requireAuth(b.handlePay)).Methods("PUT")
	b.router.HandleFunc("/api/v1/payments/{id}/cancel", b.requireAuth(b.handleCancel)).Methods("POST")
	b.router.HandleFunc("/api/v1/reports/financial", b.requireAuth(b.handleFinancialReport)).Methods("GET")

	b.server = httptest.NewServer(b.router)
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) baseURL() string {
	return b.server.URL + "/api/v1"
}

func (b *fakeBackend) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			response.Unauthorized(w, "invalid or missing token")
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "malformed body", err)
		return
	}

	if req.Password != "secret" {
		response.Unauthorized(w, "invalid credentials")
		return
	}

	response.Success(w, domain.LoginResponse{
		User:  domain.User{ID: uuid.New(), Name: "Admin", Email: req.Email, Role: domain.UserRoleAdmin},
		Token: testToken,
	})
}

func (b *fakeBackend) handleOverdue(w http.ResponseWriter, r *http.Request) {
	response.Success(w, []domain.Payment{b.payment})
}

func (b *fakeBackend) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["id"] != b.payment.ID.String() {
		response.NotFound(w, "payment not found")
		return
	}
	response.Success(w, b.payment)
}

func (b *fakeBackend) handlePay(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["id"] != b.payment.ID.String() {
		response.NotFound(w, "payment not found")
		return
	}
	if b.payment.Status == domain.PaymentStatusPaid {
		response.Conflict(w, "payment already settled")
		return
	}

	var req domain.MarkPaymentPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "malformed body", err)
		return
	}

	b.payment.Status = domain.PaymentStatusPaid
	b.payment.PaymentDate = &req.PaymentDate
	b.payment.PaymentMethod = &req.PaymentMethod
	response.Success(w, b.payment)
}

func (b *fakeBackend) handleCancel(w http.ResponseWriter, r *http.Request) {
	if b.payment.Status == domain.PaymentStatusPaid {
		response.Conflict(w, "payment already settled")
		return
	}
	b.payment.Status = domain.PaymentStatusCancelled
	response.Success(w, nil)
}

func (b *fakeBackend) handleFinancialReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	response.Success(w, domain.FinancialReport{
		Summary: domain.FinancialReportSummary{
			TotalAmount:  b.payment.Amount,
			PaymentCount: 1,
		},
		Payments: []domain.Payment{b.payment},
	})
}

func newClient(t *testing.T, backend *fakeBackend) (*api.Client, *session.Session) {
	t.Helper()
	sess := session.New(nil)
	client := api.New(backend.baseURL(), 5*time.Second, sess)
	return client, sess
}

func login(t *testing.T, client *api.Client) {
	t.Helper()
	_, err := client.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})
	assert.NoError(t, err)
}

func TestClient_LoginStoresSession(t *testing.T) {
	backend := newFakeBackend(t)
	client, sess := newClient(t, backend)

	result, err := client.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, testToken, result.Token)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "admin@example.com", sess.User().Email)
}

func TestClient_LoginRejectsMalformedRequest(t *testing.T) {
	backend := newFakeBackend(t)
	client, sess := newClient(t, backend)

	_, err := client.Login(context.Background(), domain.LoginRequest{Email: "not-an-email"})

	assert.ErrorIs(t, err, customError.ErrInvalidArgument)
	assert.False(t, sess.Authenticated())
}

func TestClient_BearerTokenIsInjected(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	payments, err := client.OverduePayments(context.Background())

	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, backend.payment.ID, payments[0].ID)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromFloat(850.00)))
	assert.Equal(t, "2024-05-01", payments[0].DueDate.String())
}

func TestClient_UnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	backend := newFakeBackend(t)

	sess := session.New(nil)
	hookFired := false
	client := api.New(backend.baseURL(), 5*time.Second, sess,
		api.WithOnUnauthorized(func() { hookFired = true }))

	// A stale token the backend rejects
	assert.NoError(t, sess.Set(&domain.User{Name: "Stale"}, "expired-token"))

	_, err := client.OverduePayments(context.Background())

	assert.ErrorIs(t, err, customError.ErrUnauthorized)
	assert.False(t, sess.Authenticated())
	assert.True(t, hookFired)
}

func TestClient_MarkPaymentPaid(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	paidAt := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	payment, err := client.MarkPaymentPaid(context.Background(), backend.payment.ID, domain.MarkPaymentPaidRequest{
		PaymentDate:   paidAt,
		PaymentMethod: domain.PaymentMethodPix,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
	assert.NotNil(t, payment.PaymentDate)
	assert.True(t, paidAt.Equal(*payment.PaymentDate))
	assert.Equal(t, domain.PaymentMethodPix, *payment.PaymentMethod)
}

func TestClient_MarkPaymentPaidConflict(t *testing.T) {
	backend := newFakeBackend(t)
	backend.payment.Status = domain.PaymentStatusPaid

	client, _ := newClient(t, backend)
	login(t, client)

	_, err := client.MarkPaymentPaid(context.Background(), backend.payment.ID, domain.MarkPaymentPaidRequest{
		PaymentDate:   time.Now(),
		PaymentMethod: domain.PaymentMethodCash,
	})

	assert.ErrorIs(t, err, customError.ErrConflict)
}

func TestClient_PaymentNotFound(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	_, err := client.Payment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, customError.ErrNotFound)
}

func TestClient_CancelPayment(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	assert.NoError(t, client.CancelPayment(context.Background(), backend.payment.ID))
	assert.Equal(t, domain.PaymentStatusCancelled, backend.payment.Status)
}

func TestClient_FinancialReport(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	report, err := client.FinancialReport(context.Background(), domain.FinancialReportRequest{
		StartDate: domain.NewDate(2024, 5, 1),
		EndDate:   domain.NewDate(2024, 5, 31),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Summary.PaymentCount)
	assert.Len(t, report.Payments, 1)
}

func TestClient_RejectsFailureEnvelopeOnSuccessStatus(t *testing.T) {
	tests := []struct {
		name string
		body response.Response
	}{
		{
			name: "success flag false despite 200",
			body: response.Response{Success: false, Error: "backend is rebuilding"},
		},
		{
			name: "payload missing despite success flag",
			body: response.Response{Success: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			t.Cleanup(server.Close)

			client := api.New(server.URL, 5*time.Second, session.New(nil))

			_, err := client.OverduePayments(context.Background())

			assert.ErrorIs(t, err, customError.ErrTransport)
		})
	}
}

func TestClient_FinancialReportRejectsInvertedPeriod(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newClient(t, backend)
	login(t, client)

	_, err := client.FinancialReport(context.Background(), domain.FinancialReportRequest{
		StartDate: domain.NewDate(2024, 5, 31),
		EndDate:   domain.NewDate(2024, 5, 1),
	})

	assert.ErrorIs(t, err, customError.ErrInvalidArgument)
}
