package usecase

import (
	"context"

	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ StatsUseCase = (*statsUC)(nil)

// DashboardStats is the aggregated view behind the console's landing page.
type DashboardStats struct {
	MembershipRevenue RevenueByPeriod           `json:"membership_revenue"`
	SalesRevenue      RevenueByPeriod           `json:"sales_revenue"`
	PaymentsByMode    map[model.PaymentMode]int `json:"payments_by_mode"`
	TopProducts       []repository.ProductUnits `json:"top_products"`
}

type RevenueByPeriod struct {
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

// StatsUseCase aggregates already-recorded payments and sales for reporting.
type StatsUseCase interface {
	Dashboard(ctx context.Context, topN int) (*DashboardStats, error)
}

type statsUC struct {
	ledger repository.LedgerRepository
	sales  repository.SaleRepository
	log    *zerolog.Logger
}

func NewStatsUseCase(ledger repository.LedgerRepository, sales repository.SaleRepository, logger *zerolog.Logger) *statsUC {
	return &statsUC{ledger: ledger, sales: sales, log: logger}
}

func (s *statsUC) Dashboard(ctx context.Context, topN int) (*DashboardStats, error) {
	out := &DashboardStats{}

	var err error
	if out.MembershipRevenue, err = s.revenue(ctx, s.ledger.SumByPeriod); err != nil {
		return nil, err
	}
	if out.SalesRevenue, err = s.revenue(ctx, s.sales.SumByPeriod); err != nil {
		return nil, err
	}
	if out.PaymentsByMode, err = s.ledger.CountByMode(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.TopProducts, err = s.sales.TopProducts(ctx, repository.NoTX, topN); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *statsUC) revenue(ctx context.Context, sum func(context.Context, repository.Tx, string) (int64, error)) (RevenueByPeriod, error) {
	var r RevenueByPeriod
	var err error
	if r.Week, err = sum(ctx, repository.NoTX, "week"); err != nil {
		return r, err
	}
	if r.Month, err = sum(ctx, repository.NoTX, "month"); err != nil {
		return r, err
	}
	if r.Year, err = sum(ctx, repository.NoTX, "year"); err != nil {
		return r, err
	}
	return r, nil
}
