package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

// Payment fetches one payment by ID
func (c *Client) Payment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/"+id.String(), nil, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// LeasePayments fetches all payments for a lease
func (c *Client) LeasePayments(ctx context.Context, leaseID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := c.do(ctx, http.MethodGet, "/leases/"+leaseID.String()+"/payments", nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// OverduePayments fetches all payments past their due date and unpaid
func (c *Client) OverduePayments(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/overdue", nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// UpcomingPayments fetches pending payments due within the next 'days' days
func (c *Client) UpcomingPayments(ctx context.Context, days int) ([]domain.Payment, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	var payments []domain.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/upcoming", query, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkPaymentPaid submits a pay request. The backend is the source of truth
// for the resulting status and for whatever late fee it actually charges;
// this call never mutates local state beyond what the response says.
func (c *Client) MarkPaymentPaid(ctx context.Context, id uuid.UUID, req domain.MarkPaymentPaidRequest) (*domain.Payment, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, customError.WrapInvalidArgument(err.Error())
	}
	if !req.PaymentMethod.Valid() {
		return nil, customError.WrapInvalidArgument("unknown payment method " + string(req.PaymentMethod))
	}

	var payment domain.Payment
	if err := c.do(ctx, http.MethodPut, "/payments/"+id.String()+"/pay", nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CancelPayment submits a cancel request for a pending or overdue payment
func (c *Client) CancelPayment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/payments/"+id.String()+"/cancel", nil, nil, nil)
}

// PaymentStats fetches aggregate payment statistics for a lease
func (c *Client) PaymentStats(ctx context.Context, leaseID uuid.UUID) (*domain.PaymentStats, error) {
	var stats domain.PaymentStats
	if err := c.do(ctx, http.MethodGet, "/leases/"+leaseID.String()+"/payments/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
