package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment lifecycle state. pending is the initial state,
// paid and cancelled are terminal, overdue is pending past its due date.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := PaymentStatus(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown payment status %q", raw)
	}
	*s = v
	return nil
}

// PaymentMethod is how a payment was settled
type PaymentMethod string

const (
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCreditCard:
		return true
	}
	return false
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := PaymentMethod(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown payment method %q", raw)
	}
	*m = v
	return nil
}

// PaymentType is informational only; it never affects fee calculation
type PaymentType string

const (
	PaymentTypeRent        PaymentType = "rent"
	PaymentTypePaintingFee PaymentType = "painting_fee"
	PaymentTypeAdjustment  PaymentType = "adjustment"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeRent, PaymentTypePaintingFee, PaymentTypeAdjustment:
		return true
	}
	return false
}

func (t *PaymentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := PaymentType(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown payment type %q", raw)
	}
	*t = v
	return nil
}

// Payment represents one billable obligation tied to a lease. The backend
// owns it; this side only reads snapshots and submits pay/cancel requests.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       Date            `json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod *PaymentMethod  `json:"payment_method,omitempty"`
	Status        PaymentStatus   `json:"status"`
	PaymentType   PaymentType     `json:"payment_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DTOs for requests and responses

type MarkPaymentPaidRequest struct {
	PaymentDate   time.Time     `json:"payment_date" validate:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required"`
}

type PaymentStats struct {
	TotalCount    int             `json:"total_count"`
	PaidCount     int             `json:"paid_count"`
	PendingCount  int             `json:"pending_count"`
	OverdueCount  int             `json:"overdue_count"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalPending  decimal.Decimal `json:"total_pending"`
	TotalOverdue  decimal.Decimal `json:"total_overdue"`
	OnTimePercent float64         `json:"on_time_percent"`
}
