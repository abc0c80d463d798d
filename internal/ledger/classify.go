package ledger

import (
	"time"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
	"github.com/kitnetmanager/kitnet-client/pkg/utils"
)

// Classification is the read-time view of a payment's lifecycle state:
// which status badge to show and which actions are legal.
type Classification struct {
	DisplayStatus domain.PaymentStatus `json:"display_status"`
	IsPayable     bool                 `json:"is_payable"`
	IsCancellable bool                 `json:"is_cancellable"`
}

// Classify determines the display status of a payment snapshot as of 'today'.
//
// paid and cancelled are terminal and are never re-derived. A stored overdue
// status is treated the same as one derived from a pending payment whose due
// date has passed; the backend may or may not have written it yet.
// Total over any well-formed payment: an unknown stored status falls back to
// the pending branch, but unknown statuses are already rejected at the JSON
// boundary.
func Classify(p *domain.Payment, today time.Time) Classification {
	var display domain.PaymentStatus

	switch p.Status {
	case domain.PaymentStatusCancelled:
		display = domain.PaymentStatusCancelled
	case domain.PaymentStatusPaid:
		display = domain.PaymentStatusPaid
	case domain.PaymentStatusOverdue:
		display = domain.PaymentStatusOverdue
	default:
		if utils.DaysBetween(p.DueDate.Time, today) > 0 {
			display = domain.PaymentStatusOverdue
		} else {
			display = domain.PaymentStatusPending
		}
	}

	actionable := display == domain.PaymentStatusPending || display == domain.PaymentStatusOverdue

	return Classification{
		DisplayStatus: display,
		IsPayable:     actionable,
		IsCancellable: actionable,
	}
}
