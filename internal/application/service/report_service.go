package service

import (
	"context"

	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
	"github.com/mvaldezl/ferreteria-api/internal/domain/report"
	"github.com/mvaldezl/ferreteria-api/internal/domain/repository"
	"github.com/mvaldezl/ferreteria-api/pkg/money"
)

// ReportService produces the comparative financial report
type ReportService struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, purchaseRepo repository.PurchaseRepository) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// ComparativeReport is the report payload with decimal amounts
type ComparativeReport struct {
	TotalSales        float64            `json:"total_sales"`
	TotalPurchases    float64            `json:"total_purchases"`
	NetProfit         float64            `json:"net_profit"`
	SalesByMethod     map[string]float64 `json:"sales_by_method"`
	PurchasesByMethod map[string]float64 `json:"purchases_by_method"`
	SaleCount         int                `json:"sale_count"`
	PurchaseCount     int                `json:"purchase_count"`
}

// GetComparativeReport aggregates the full sale and purchase history.
// Recomputed on every call; an empty history yields an all-zero report.
func (s *ReportService) GetComparativeReport(ctx context.Context) (*ComparativeReport, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	c := report.Aggregate(sales, purchases)

	out := &ComparativeReport{
		TotalSales:        money.ToDecimal(c.TotalSales),
		TotalPurchases:    money.ToDecimal(c.TotalPurchases),
		NetProfit:         money.ToDecimal(c.NetProfit),
		SalesByMethod:     make(map[string]float64, len(c.SalesByMethod)),
		PurchasesByMethod: make(map[string]float64, len(c.PurchasesByMethod)),
		SaleCount:         c.SaleCount,
		PurchaseCount:     c.PurchaseCount,
	}
	for _, method := range enum.PaymentMethods() {
		out.SalesByMethod[method.String()] = money.ToDecimal(c.SalesByMethod[method])
		out.PurchasesByMethod[method.String()] = money.ToDecimal(c.PurchasesByMethod[method])
	}

	return out, nil
}
