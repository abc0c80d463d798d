package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

// Dashboard fetches the aggregate dashboard: occupancy, financials,
// contracts, and the alert lists.
func (c *Client) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// FinancialReport fetches the financial report for a period
func (c *Client) FinancialReport(ctx context.Context, req domain.FinancialReportRequest) (*domain.FinancialReport, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, customError.WrapInvalidArgument(err.Error())
	}
	if req.EndDate.Before(req.StartDate.Time) {
		return nil, customError.WrapInvalidArgument("end_date must not be before start_date")
	}

	query := url.Values{}
	query.Set("start_date", req.StartDate.String())
	query.Set("end_date", req.EndDate.String())
	if req.PaymentType != nil {
		query.Set("payment_type", string(*req.PaymentType))
	}
	if req.Status != nil {
		query.Set("status", string(*req.Status))
	}

	var report domain.FinancialReport
	if err := c.do(ctx, http.MethodGet, "/reports/financial", query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// PaymentHistory fetches the filtered payment history report
func (c *Client) PaymentHistory(ctx context.Context, req domain.PaymentHistoryRequest) (*domain.PaymentHistory, error) {
	query := url.Values{}
	if req.LeaseID != "" {
		query.Set("lease_id", req.LeaseID)
	}
	if req.TenantID != "" {
		query.Set("tenant_id", req.TenantID)
	}
	if req.Status != nil {
		query.Set("status", string(*req.Status))
	}
	if req.StartDate != nil {
		query.Set("start_date", req.StartDate.String())
	}
	if req.EndDate != nil {
		query.Set("end_date", req.EndDate.String())
	}

	var history domain.PaymentHistory
	if err := c.do(ctx, http.MethodGet, "/reports/payments", query, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
