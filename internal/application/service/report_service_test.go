package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
)

func newReportTestEnv() (*saleTestEnv, *purchaseTestEnv, *ReportService) {
	saleEnv := newSaleTestEnv()
	// share the product catalog so stock flows through both sides
	suppliers := newFakeSupplierRepo()
	purchases := newFakePurchaseRepo(saleEnv.products, suppliers)
	purchaseEnv := &purchaseTestEnv{
		products:  saleEnv.products,
		suppliers: suppliers,
		purchases: purchases,
		svc:       NewPurchaseService(purchases, saleEnv.products, suppliers),
	}
	svc := NewReportService(saleEnv.sales, purchases)
	return saleEnv, purchaseEnv, svc
}

func TestReportService_EmptyHistory(t *testing.T) {
	_, _, svc := newReportTestEnv()

	report, err := svc.GetComparativeReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.TotalSales)
	assert.Equal(t, 0.0, report.TotalPurchases)
	assert.Equal(t, 0.0, report.NetProfit)
	assert.Equal(t, 0, report.SaleCount)
	assert.Equal(t, 0, report.PurchaseCount)
	assert.Equal(t, 0.0, report.SalesByMethod["USD"])
	assert.Equal(t, 0.0, report.SalesByMethod["Transferencia"])
	assert.Equal(t, 0.0, report.PurchasesByMethod["USD"])
	assert.Equal(t, 0.0, report.PurchasesByMethod["Transferencia"])
}

func TestReportService_ComparativeReport(t *testing.T) {
	saleEnv, purchaseEnv, svc := newReportTestEnv()
	ctx := context.Background()

	customer := saleEnv.customers.add(entity.Customer{FullName: "Juan"})
	supplier := purchaseEnv.suppliers.add(entity.Supplier{FullName: "Proveedor SA"})
	productA := saleEnv.products.add(entity.Product{Name: "Martillo", Price: 1000, Stock: 50})
	productB := saleEnv.products.add(entity.Product{Name: "Cinta", Price: 550, Stock: 50})

	_, err := saleEnv.svc.CreateSale(ctx, &CreateOrderInput{
		CounterpartID: customer.ID,
		PaymentMethod: "USD",
		Items: []OrderItemInput{
			{ProductID: productA.ID, Quantity: 3},
			{ProductID: productB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = saleEnv.svc.CreateSale(ctx, &CreateOrderInput{
		CounterpartID: customer.ID,
		PaymentMethod: "Transferencia",
		Items:         []OrderItemInput{{ProductID: productA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = purchaseEnv.svc.CreatePurchase(ctx, &CreateOrderInput{
		CounterpartID: supplier.ID,
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: productA.ID, Quantity: 10}},
	})
	require.NoError(t, err)

	report, err := svc.GetComparativeReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 55.50, report.TotalSales)
	assert.Equal(t, 100.0, report.TotalPurchases)
	assert.Equal(t, -44.50, report.NetProfit)
	assert.Equal(t, 35.50, report.SalesByMethod["USD"])
	assert.Equal(t, 20.0, report.SalesByMethod["Transferencia"])
	assert.Equal(t, 100.0, report.PurchasesByMethod["USD"])
	assert.Equal(t, 0.0, report.PurchasesByMethod["Transferencia"])
	assert.Equal(t, 2, report.SaleCount)
	assert.Equal(t, 1, report.PurchaseCount)
}

func TestReportService_RecomputedAfterDelete(t *testing.T) {
	saleEnv, _, svc := newReportTestEnv()
	ctx := context.Background()

	customer := saleEnv.customers.add(entity.Customer{FullName: "Juan"})
	product := saleEnv.products.add(entity.Product{Name: "Pala", Price: 4500, Stock: 10})

	sale, err := saleEnv.svc.CreateSale(ctx, &CreateOrderInput{
		CounterpartID: customer.ID,
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	report, err := svc.GetComparativeReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90.0, report.TotalSales)
	assert.Equal(t, 1, report.SaleCount)

	require.NoError(t, saleEnv.svc.DeleteSale(ctx, sale.ID))

	report, err = svc.GetComparativeReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.TotalSales)
	assert.Equal(t, 0, report.SaleCount)
}
