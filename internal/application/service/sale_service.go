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

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// OrderItemInput represents one line in an order submission
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create sale/purchase input
type CreateOrderInput struct {
	CounterpartID uuid.UUID
	PaymentMethod string
	Items         []OrderItemInput
}

// CreateSale composes and submits a sale. Each line snapshots the product's
// current price and name; stock and the customer counter are adjusted in one
// transaction by the repository.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateOrderInput) (*entity.Sale, error) {
	method, err := enum.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CounterpartID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	completed, err := s.compose(ctx, customer.ID, customer.FullName, method, input.Items)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		CustomerID:    completed.CounterpartID,
		CustomerName:  completed.CounterpartName,
		PaymentMethod: completed.PaymentMethod,
		Total:         completed.Total,
		CreatedAt:     completed.CreatedAt,
	}
	for _, line := range completed.Lines {
		sale.Lines = append(sale.Lines, entity.SaleLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		var stockErr *repository.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, s.stockError(ctx, stockErr)
		}
		return nil, err
	}

	return sale, nil
}

// compose runs the order workflow: fetch all products in one query, add a
// line per item with the price snapshot, then submit.
func (s *SaleService) compose(ctx context.Context, counterpartID uuid.UUID, counterpartName string, method enum.PaymentMethod, items []OrderItemInput) (*order.Completed, error) {
	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
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
	composer.SetCounterpart(counterpartID, counterpartName)
	composer.SetPaymentMethod(method)

	for i, item := range items {
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
	return completed, nil
}

func (s *SaleService) stockError(ctx context.Context, stockErr *repository.InsufficientStockError) error {
	products, err := s.productRepo.GetByIDs(ctx, stockErr.ProductIDs)
	if err != nil || len(products) == 0 {
		return apperror.NewUnprocessableError(stockErr.Error())
	}
	var names []string
	for _, p := range products {
		names = append(names, p.Name)
	}
	return apperror.NewUnprocessableError(fmt.Sprintf("Insufficient stock for: %v", names))
}

func mapComposeError(err error) error {
	switch {
	case errors.Is(err, order.ErrDuplicateLine),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMissingCounterpart),
		errors.Is(err, order.ErrLineNotFound):
		return apperror.NewBadRequestError(err.Error())
	default:
		return err
	}
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// DeleteSale removes a sale and reverses its stock and counter effects
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSale(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}

// ListSales lists sales with pagination
func (s *SaleService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSalesByCustomer lists a customer's sales with pagination
func (s *SaleService) ListSalesByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	sales, total, err := s.saleRepo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
