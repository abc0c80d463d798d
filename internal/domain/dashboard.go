package domain

import "github.com/shopspring/decimal"

// Dashboard and report DTOs, read-only aggregates computed by the backend.

type OccupancyMetrics struct {
	TotalUnits       int     `json:"total_units"`
	AvailableUnits   int     `json:"available_units"`
	OccupiedUnits    int     `json:"occupied_units"`
	MaintenanceUnits int     `json:"maintenance_units"`
	RenovationUnits  int     `json:"renovation_units"`
	OccupancyRate    float64 `json:"occupancy_rate"`
}

type FinancialMetrics struct {
	MonthlyProjectedRevenue decimal.Decimal `json:"monthly_projected_revenue"`
	MonthlyRealizedRevenue  decimal.Decimal `json:"monthly_realized_revenue"`
	OverdueAmount           decimal.Decimal `json:"overdue_amount"`
	TotalPendingAmount      decimal.Decimal `json:"total_pending_amount"`
	DefaultRate             float64         `json:"default_rate"`
	CollectionRate          float64         `json:"collection_rate"`
}

type ContractMetrics struct {
	TotalActiveContracts  int `json:"total_active_contracts"`
	ContractsExpiringSoon int `json:"contracts_expiring_soon"`
	ExpiredContracts      int `json:"expired_contracts"`
	CancelledContracts    int `json:"cancelled_contracts"`
}

type OverdueAlert struct {
	PaymentID   string          `json:"payment_id"`
	UnitNumber  string          `json:"unit_number"`
	TenantName  string          `json:"tenant_name"`
	Amount      decimal.Decimal `json:"amount"`
	DaysOverdue int             `json:"days_overdue"`
}

type ExpiringLeaseAlert struct {
	LeaseID         string `json:"lease_id"`
	UnitNumber      string `json:"unit_number"`
	TenantName      string `json:"tenant_name"`
	EndDate         Date   `json:"end_date"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}

type VacantUnitAlert struct {
	UnitID     string `json:"unit_id"`
	UnitNumber string `json:"unit_number"`
	Status     string `json:"status"`
	DaysVacant int    `json:"days_vacant"`
}

type Alerts struct {
	OverduePayments []OverdueAlert       `json:"overdue_payments"`
	ExpiringLeases  []ExpiringLeaseAlert `json:"expiring_leases"`
	VacantUnits     []VacantUnitAlert    `json:"vacant_units"`
	TotalAlerts     int                  `json:"total_alerts"`
}

type Dashboard struct {
	Occupancy OccupancyMetrics `json:"occupancy"`
	Financial FinancialMetrics `json:"financial"`
	Contracts ContractMetrics  `json:"contracts"`
	Alerts    Alerts           `json:"alerts"`
}

type ReportPeriod struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

type FinancialReportRequest struct {
	StartDate   Date           `json:"start_date" validate:"required"`
	EndDate     Date           `json:"end_date" validate:"required"`
	PaymentType *PaymentType   `json:"payment_type,omitempty"`
	Status      *PaymentStatus `json:"status,omitempty"`
}

type ReportBucket struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type FinancialReportSummary struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	PaymentCount  int             `json:"payment_count"`
}

type FinancialReport struct {
	Period   ReportPeriod                   `json:"period"`
	Summary  FinancialReportSummary         `json:"summary"`
	ByType   map[PaymentType]ReportBucket   `json:"by_type"`
	ByStatus map[PaymentStatus]ReportBucket `json:"by_status"`
	Payments []Payment                      `json:"payments"`
}

type PaymentHistoryRequest struct {
	LeaseID   string         `json:"lease_id,omitempty"`
	TenantID  string         `json:"tenant_id,omitempty"`
	Status    *PaymentStatus `json:"status,omitempty"`
	StartDate *Date          `json:"start_date,omitempty"`
	EndDate   *Date          `json:"end_date,omitempty"`
}

type PaymentHistory struct {
	TotalCount int       `json:"total_count"`
	Payments   []Payment `json:"payments"`
}
