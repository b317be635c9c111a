// Package report computes the comparative financial summary over the full
// history of sales and purchases. The report is a pure projection, recomputed
// on demand and never persisted.
package report

import (
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
)

// Comparative aggregates all historical sales and purchases. Amounts are in
// cents; by-method maps always carry an entry for every payment method, zero
// when no orders used it.
type Comparative struct {
	TotalSales        int64
	TotalPurchases    int64
	NetProfit         int64
	SalesByMethod     map[enum.PaymentMethod]int64
	PurchasesByMethod map[enum.PaymentMethod]int64
	SaleCount         int
	PurchaseCount     int
}

// Aggregate builds a Comparative from the complete sale and purchase history.
// It is a pure function of its inputs: empty history yields an all-zero
// report, and the result does not depend on input ordering.
func Aggregate(sales []entity.Sale, purchases []entity.Purchase) Comparative {
	c := Comparative{
		SalesByMethod:     make(map[enum.PaymentMethod]int64),
		PurchasesByMethod: make(map[enum.PaymentMethod]int64),
		SaleCount:         len(sales),
		PurchaseCount:     len(purchases),
	}
	for _, method := range enum.PaymentMethods() {
		c.SalesByMethod[method] = 0
		c.PurchasesByMethod[method] = 0
	}

	for _, sale := range sales {
		c.TotalSales += sale.Total
		c.SalesByMethod[sale.PaymentMethod] += sale.Total
	}
	for _, purchase := range purchases {
		c.TotalPurchases += purchase.Total
		c.PurchasesByMethod[purchase.PaymentMethod] += purchase.Total
	}

	c.NetProfit = c.TotalSales - c.TotalPurchases
	return c
}
