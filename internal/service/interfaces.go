package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
)

// PaymentsAPI is the slice of the backend surface the billing service needs.
// *api.Client satisfies it; tests substitute a mock.
type PaymentsAPI interface {
	// Payment fetches one payment by ID
	Payment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)

	// LeasePayments fetches all payments for a lease
	LeasePayments(ctx context.Context, leaseID uuid.UUID) ([]domain.Payment, error)

	// OverduePayments fetches all overdue payments
	OverduePayments(ctx context.Context) ([]domain.Payment, error)

	// UpcomingPayments fetches pending payments due within 'days' days
	UpcomingPayments(ctx context.Context, days int) ([]domain.Payment, error)

	// MarkPaymentPaid submits a pay request
	MarkPaymentPaid(ctx context.Context, id uuid.UUID, req domain.MarkPaymentPaidRequest) (*domain.Payment, error)

	// CancelPayment submits a cancel request
	CancelPayment(ctx context.Context, id uuid.UUID) error

	// PaymentStats fetches aggregate statistics for a lease
	PaymentStats(ctx context.Context, leaseID uuid.UUID) (*domain.PaymentStats, error)
}

// DashboardAPI is the dashboard slice of the backend surface
type DashboardAPI interface {
	// Dashboard fetches the aggregate dashboard snapshot
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
