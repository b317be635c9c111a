package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
	"github.com/mvaldezl/ferreteria-api/pkg/apperror"
)

type purchaseTestEnv struct {
	products  *fakeProductRepo
	suppliers *fakeSupplierRepo
	purchases *fakePurchaseRepo
	svc       *PurchaseService
}

func newPurchaseTestEnv() *purchaseTestEnv {
	products := newFakeProductRepo()
	suppliers := newFakeSupplierRepo()
	purchases := newFakePurchaseRepo(products, suppliers)
	return &purchaseTestEnv{
		products:  products,
		suppliers: suppliers,
		purchases: purchases,
		svc:       NewPurchaseService(purchases, products, suppliers),
	}
}

func TestPurchaseService_CreatePurchase(t *testing.T) {
	env := newPurchaseTestEnv()
	ctx := context.Background()

	supplier := env.suppliers.add(entity.Supplier{FullName: "Distribuidora Norte"})
	product := env.products.add(entity.Product{Name: "Cemento", Price: 5000, Stock: 2})

	purchase, err := env.svc.CreatePurchase(ctx, &CreateOrderInput{
		CounterpartID: supplier.ID,
		PaymentMethod: "Transferencia",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 10}},
	})
	require.NoError(t, err)
	require.NotNil(t, purchase)

	assert.Equal(t, supplier.ID, purchase.SupplierID)
	assert.Equal(t, "Distribuidora Norte", purchase.SupplierName)
	assert.Equal(t, enum.PaymentMethodTransfer, purchase.PaymentMethod)
	assert.Equal(t, int64(50000), purchase.Total)

	// purchases increase stock
	assert.Equal(t, 12, env.products.products[product.ID].Stock)
	assert.Equal(t, 1, env.suppliers.suppliers[supplier.ID].PurchasesCount)
}

func TestPurchaseService_CreatePurchase_SupplierNotFound(t *testing.T) {
	env := newPurchaseTestEnv()

	_, err := env.svc.CreatePurchase(context.Background(), &CreateOrderInput{
		CounterpartID: uuid.New(),
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestPurchaseService_CreatePurchase_ProductNotFound(t *testing.T) {
	env := newPurchaseTestEnv()
	supplier := env.suppliers.add(entity.Supplier{FullName: "Proveedor SA"})

	_, err := env.svc.CreatePurchase(context.Background(), &CreateOrderInput{
		CounterpartID: supplier.ID,
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestPurchaseService_DeletePurchase_RestoresStock(t *testing.T) {
	env := newPurchaseTestEnv()
	ctx := context.Background()

	supplier := env.suppliers.add(entity.Supplier{FullName: "Proveedor SA"})
	product := env.products.add(entity.Product{Name: "Arena", Price: 1500, Stock: 0})

	purchase, err := env.svc.CreatePurchase(ctx, &CreateOrderInput{
		CounterpartID: supplier.ID,
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 6}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, env.products.products[product.ID].Stock)

	require.NoError(t, env.svc.DeletePurchase(ctx, purchase.ID))

	assert.Equal(t, 0, env.products.products[product.ID].Stock)
	assert.Equal(t, 0, env.suppliers.suppliers[supplier.ID].PurchasesCount)
	assert.Empty(t, env.purchases.purchases)
}

func TestPurchaseService_DeletePurchase_StockAlreadySold(t *testing.T) {
	env := newPurchaseTestEnv()
	ctx := context.Background()

	supplier := env.suppliers.add(entity.Supplier{FullName: "Proveedor SA"})
	product := env.products.add(entity.Product{Name: "Ladrillos", Price: 80, Stock: 0})

	purchase, err := env.svc.CreatePurchase(ctx, &CreateOrderInput{
		CounterpartID: supplier.ID,
		PaymentMethod: "USD",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 100}},
	})
	require.NoError(t, err)

	// part of the received stock is gone, the delete must not go negative
	env.products.products[product.ID].Stock = 40

	err = env.svc.DeletePurchase(ctx, purchase.ID)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, 40, env.products.products[product.ID].Stock)
	assert.Len(t, env.purchases.purchases, 1)
}
