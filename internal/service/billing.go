package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kitnetmanager/kitnet-client/internal/cache"
	"github.com/kitnetmanager/kitnet-client/internal/config"
	"github.com/kitnetmanager/kitnet-client/internal/domain"
	"github.com/kitnetmanager/kitnet-client/internal/ledger"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
	"github.com/kitnetmanager/kitnet-client/pkg/utils"
)

// Cache keys. Everything under "payments:" is invalidated when any payment
// changes state, since overdue/upcoming/lease lists all overlap.
const (
	cacheKeyOverdue     = "payments:overdue"
	cacheKeyUpcomingFmt = "payments:upcoming:%d"
	cacheKeyLeaseFmt    = "payments:lease:%s"
	cacheKeyDashboard   = "dashboard"
	cachePrefixPayments = "payments:"
)

// PaymentView is a payment snapshot joined with its read-time classification
// and the late-fee preview for the day the view was built.
type PaymentView struct {
	Payment        domain.Payment          `json:"payment"`
	Classification ledger.Classification   `json:"classification"`
	DaysOverdue    int                     `json:"days_overdue"`
	Fee            ledger.LateFeeBreakdown `json:"fee"`
}

// LeaseSummary is the per-lease payment page: stats plus classified rows
type LeaseSummary struct {
	Stats    domain.PaymentStats `json:"stats"`
	Payments []PaymentView       `json:"payments"`
}

// BillingService orchestrates the ledger rules over the backend API and the
// snapshot cache. All real state transitions happen on the backend; this
// layer validates preconditions locally before issuing any request.
type BillingService struct {
	API       PaymentsAPI
	Dashboard DashboardAPI
	Cache     cache.Store
	Config    *config.Config

	// Now is the clock used for classification and day counts; tests pin it
	Now func() time.Time
}

func NewBillingService(
	api PaymentsAPI,
	dashboard DashboardAPI,
	cacheStore cache.Store,
	cfg *config.Config,
) *BillingService {
	return &BillingService{
		API:       api,
		Dashboard: dashboard,
		Cache:     cacheStore,
		Config:    cfg,
		Now:       time.Now,
	}
}

// Fallback TTLs when no config is injected; match the config defaults.
const (
	defaultListTTL      = 5 * time.Minute
	defaultDashboardTTL = time.Minute
)

func (s *BillingService) listTTL() time.Duration {
	if s.Config == nil {
		return defaultListTTL
	}
	return s.Config.GetListTTL()
}

func (s *BillingService) dashboardTTL() time.Duration {
	if s.Config == nil {
		return defaultDashboardTTL
	}
	return s.Config.GetDashboardTTL()
}

func (s *BillingService) rates() ledger.Rates {
	if s.Config == nil {
		return ledger.DefaultRates()
	}
	return ledger.Rates{
		PenaltyRate:         s.Config.GetPenaltyRate(),
		MonthlyInterestRate: s.Config.GetMonthlyInterestRate(),
		InterestDivisorDays: s.Config.Business.InterestDivisorDays,
	}
}

// View classifies one payment snapshot and attaches its fee preview as of
// today. For payments that are not overdue the fee breakdown is just the
// principal.
func (s *BillingService) View(p domain.Payment) (PaymentView, error) {
	now := s.Now()
	classification := ledger.Classify(&p, now)

	daysOverdue := 0
	if classification.DisplayStatus == domain.PaymentStatusOverdue {
		daysOverdue = ledger.DaysOverdue(p.DueDate.Time, now)
	}

	fee, err := ledger.ComputeLateFeeWithRates(p.Amount, daysOverdue, s.rates())
	if err != nil {
		return PaymentView{}, err
	}

	return PaymentView{
		Payment:        p,
		Classification: classification,
		DaysOverdue:    daysOverdue,
		Fee:            fee,
	}, nil
}

func (s *BillingService) views(payments []domain.Payment) ([]PaymentView, error) {
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		view, err := s.View(p)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// OverduePayments returns all overdue payments with fee previews attached
func (s *BillingService) OverduePayments(ctx context.Context) ([]PaymentView, error) {
	payments, err := s.cachedPayments(ctx, cacheKeyOverdue, func() ([]domain.Payment, error) {
		return s.API.OverduePayments(ctx)
	})
	if err != nil {
		return nil, err
	}
	return s.views(payments)
}

// UpcomingPayments returns pending payments due within 'days' days
func (s *BillingService) UpcomingPayments(ctx context.Context, days int) ([]PaymentView, error) {
	if days <= 0 {
		return nil, customError.WrapInvalidArgument("days must be greater than 0")
	}

	key := fmt.Sprintf(cacheKeyUpcomingFmt, days)
	payments, err := s.cachedPayments(ctx, key, func() ([]domain.Payment, error) {
		return s.API.UpcomingPayments(ctx, days)
	})
	if err != nil {
		return nil, err
	}
	return s.views(payments)
}

// LeaseSummary returns the payment page for one lease: backend stats plus
// every payment classified and priced.
func (s *BillingService) LeaseSummary(ctx context.Context, lease *domain.Lease) (*LeaseSummary, error) {
	stats, err := s.API.PaymentStats(ctx, lease.ID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(cacheKeyLeaseFmt, lease.ID)
	payments, err := s.cachedPayments(ctx, key, func() ([]domain.Payment, error) {
		return s.API.LeasePayments(ctx, lease.ID)
	})
	if err != nil {
		return nil, err
	}

	views, err := s.views(payments)
	if err != nil {
		return nil, err
	}

	return &LeaseSummary{
		Stats:    *stats,
		Payments: views,
	}, nil
}

// RecordPayment settles a payment. The snapshot must be payable and the
// payment date must not be in the future; both are checked before any request
// is issued. The backend decides the final state and whether the previewed
// late fee is actually charged.
func (s *BillingService) RecordPayment(ctx context.Context, p *domain.Payment, paymentDate time.Time, method domain.PaymentMethod) (*domain.Payment, error) {
	now := s.Now()

	classification := ledger.Classify(p, now)
	if !classification.IsPayable {
		return nil, customError.WrapInvalidState("pay", string(classification.DisplayStatus))
	}

	if utils.DaysBetween(now, paymentDate) > 0 {
		return nil, customError.WrapInvalidArgument("payment_date must not be in the future")
	}

	if !method.Valid() {
		return nil, customError.WrapInvalidArgument("unknown payment method " + string(method))
	}

	updated, err := s.API.MarkPaymentPaid(ctx, p.ID, domain.MarkPaymentPaidRequest{
		PaymentDate:   paymentDate,
		PaymentMethod: method,
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePaymentCaches(ctx)
	return updated, nil
}

// CancelPayment aborts a pending or overdue payment
func (s *BillingService) CancelPayment(ctx context.Context, p *domain.Payment) error {
	classification := ledger.Classify(p, s.Now())
	if !classification.IsCancellable {
		return customError.WrapInvalidState("cancel", string(classification.DisplayStatus))
	}

	if err := s.API.CancelPayment(ctx, p.ID); err != nil {
		return err
	}

	s.invalidatePaymentCaches(ctx)
	return nil
}

// DashboardSnapshot returns the cached dashboard, refreshing it after its TTL
func (s *BillingService) DashboardSnapshot(ctx context.Context) (*domain.Dashboard, error) {
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, cacheKeyDashboard); err == nil && ok {
			var dashboard domain.Dashboard
			if err := json.Unmarshal(raw, &dashboard); err == nil {
				return &dashboard, nil
			}
		}
	}

	dashboard, err := s.Dashboard.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(dashboard); err == nil {
			_ = s.Cache.Set(ctx, cacheKeyDashboard, raw, s.dashboardTTL())
		}
	}

	return dashboard, nil
}

// cachedPayments reads a payment list through the cache. Cache failures fall
// back to the backend; a stale list is worse than a slow one.
func (s *BillingService) cachedPayments(ctx context.Context, key string, fetch func() ([]domain.Payment, error)) ([]domain.Payment, error) {
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
			var payments []domain.Payment
			if err := json.Unmarshal(raw, &payments); err == nil {
				return payments, nil
			}
		}
	}

	payments, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(payments); err == nil {
			_ = s.Cache.Set(ctx, key, raw, s.listTTL())
		}
	}

	return payments, nil
}

func (s *BillingService) invalidatePaymentCaches(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	_ = s.Cache.DeletePrefix(ctx, cachePrefixPayments)
	_ = s.Cache.Delete(ctx, cacheKeyDashboard)
}
