package report

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
)

func TestAggregate_EmptyHistory(t *testing.T) {
	c := Aggregate(nil, nil)

	assert.Equal(t, int64(0), c.TotalSales)
	assert.Equal(t, int64(0), c.TotalPurchases)
	assert.Equal(t, int64(0), c.NetProfit)
	assert.Equal(t, 0, c.SaleCount)
	assert.Equal(t, 0, c.PurchaseCount)

	// every method must be present with an explicit zero, never absent
	for _, method := range enum.PaymentMethods() {
		v, ok := c.SalesByMethod[method]
		require.True(t, ok)
		assert.Equal(t, int64(0), v)
		v, ok = c.PurchasesByMethod[method]
		require.True(t, ok)
		assert.Equal(t, int64(0), v)
	}
}

func TestAggregate_SingleSale(t *testing.T) {
	sales := []entity.Sale{
		{Total: 3550, PaymentMethod: enum.PaymentMethodUSD},
	}

	c := Aggregate(sales, nil)

	assert.Equal(t, int64(3550), c.TotalSales)
	assert.Equal(t, int64(0), c.TotalPurchases)
	assert.Equal(t, int64(3550), c.NetProfit)
	assert.Equal(t, int64(3550), c.SalesByMethod[enum.PaymentMethodUSD])
	assert.Equal(t, int64(0), c.SalesByMethod[enum.PaymentMethodTransfer])
	assert.Equal(t, 1, c.SaleCount)
	assert.Equal(t, 0, c.PurchaseCount)
}

func TestAggregate_MethodBuckets(t *testing.T) {
	sales := []entity.Sale{
		{Total: 1000, PaymentMethod: enum.PaymentMethodUSD},
		{Total: 2500, PaymentMethod: enum.PaymentMethodTransfer},
		{Total: 500, PaymentMethod: enum.PaymentMethodUSD},
	}
	purchases := []entity.Purchase{
		{Total: 3000, PaymentMethod: enum.PaymentMethodTransfer},
	}

	c := Aggregate(sales, purchases)

	assert.Equal(t, int64(4000), c.TotalSales)
	assert.Equal(t, int64(3000), c.TotalPurchases)
	assert.Equal(t, int64(1000), c.NetProfit)
	assert.Equal(t, int64(1500), c.SalesByMethod[enum.PaymentMethodUSD])
	assert.Equal(t, int64(2500), c.SalesByMethod[enum.PaymentMethodTransfer])
	assert.Equal(t, int64(0), c.PurchasesByMethod[enum.PaymentMethodUSD])
	assert.Equal(t, int64(3000), c.PurchasesByMethod[enum.PaymentMethodTransfer])
	assert.Equal(t, 3, c.SaleCount)
	assert.Equal(t, 1, c.PurchaseCount)
}

func TestAggregate_NegativeNetProfit(t *testing.T) {
	sales := []entity.Sale{
		{Total: 1000, PaymentMethod: enum.PaymentMethodUSD},
	}
	purchases := []entity.Purchase{
		{Total: 5000, PaymentMethod: enum.PaymentMethodUSD},
	}

	c := Aggregate(sales, purchases)

	assert.Equal(t, int64(-4000), c.NetProfit)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	methods := enum.PaymentMethods()

	var sales []entity.Sale
	var purchases []entity.Purchase
	for i := 0; i < 50; i++ {
		sales = append(sales, entity.Sale{
			Total:         int64(rng.Intn(100000)),
			PaymentMethod: methods[rng.Intn(len(methods))],
		})
		purchases = append(purchases, entity.Purchase{
			Total:         int64(rng.Intn(100000)),
			PaymentMethod: methods[rng.Intn(len(methods))],
		})
	}

	want := Aggregate(sales, purchases)

	rng.Shuffle(len(sales), func(i, j int) { sales[i], sales[j] = sales[j], sales[i] })
	rng.Shuffle(len(purchases), func(i, j int) { purchases[i], purchases[j] = purchases[j], purchases[i] })

	got := Aggregate(sales, purchases)
	assert.Equal(t, want, got)
}
