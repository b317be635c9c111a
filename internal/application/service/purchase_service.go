package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
	"github.com/mvaldezl/ferreteria-api/internal/domain/order"
	"github.com/mvaldezl/ferreteria-api/internal/domain/repository"
	"github.com/mvaldezl/ferreteria-api/pkg/apperror"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
)

// PurchaseService handles purchase-related operations
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// CreatePurchase composes and submits a purchase. Stock increases and the
// supplier counter is bumped in one transaction by the repository.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreateOrderInput) (*entity.Purchase, error) {
	method, err := enum.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.CounterpartID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	composer := order.NewComposer()
	composer.SetCounterpart(supplier.ID, supplier.FullName)
	composer.SetPaymentMethod(method)

	for i, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		if err := composer.AddLine(product.ID, product.Name, product.Price); err != nil {
			return nil, mapComposeError(err)
		}
		if item.Quantity != 1 {
			if err := composer.SetQuantity(i, item.Quantity); err != nil {
				return nil, mapComposeError(err)
			}
		}
	}

	completed, err := composer.Submit(time.Now())
	if err != nil {
		return nil, mapComposeError(err)
	}

	purchase := &entity.Purchase{
		SupplierID:    completed.CounterpartID,
		SupplierName:  completed.CounterpartName,
		PaymentMethod: completed.PaymentMethod,
		Total:         completed.Total,
		CreatedAt:     completed.CreatedAt,
	}
	for _, line := range completed.Lines {
		purchase.Lines = append(purchase.Lines, entity.PurchaseLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// DeletePurchase removes a purchase and reverses its stock and counter
// effects. Fails if the received stock has already been sold on.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPurchase(ctx, id); err != nil {
		return err
	}

	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		var stockErr *repository.InsufficientStockError
		if errors.As(err, &stockErr) {
			return apperror.NewUnprocessableError("Cannot delete purchase: received stock already sold")
		}
		return err
	}
	return nil
}

// ListPurchases lists purchases with pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// ListPurchasesBySupplier lists a supplier's purchases with pagination
func (s *PurchaseService) ListPurchasesBySupplier(ctx context.Context, supplierID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	purchases, total, err := s.purchaseRepo.ListBySupplier(ctx, supplierID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}
