package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/repository"
	"github.com/mvaldezl/ferreteria-api/pkg/apperror"
	"github.com/mvaldezl/ferreteria-api/pkg/money"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
)

// Categories is the fixed product category catalog
var Categories = []string{
	"Herramientas manuales",
	"Herramientas eléctricas",
	"Materiales de construcción",
	"Tornillería y fijaciones",
	"Pinturas y acabados",
	"Plomería",
	"Electricidad",
	"Seguridad industrial",
}

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents create/update input for products
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	StockAlert  int
	ImageURL    *string
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock must not be negative")
	}
	if input.Category != "" && !validCategory(input.Category) {
		return nil, apperror.NewBadRequestError("Unknown category")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       money.FromDecimal(input.Price),
		Stock:       input.Stock,
		StockAlert:  input.StockAlert,
		ImageURL:    input.ImageURL,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock must not be negative")
	}
	if input.Category != "" && !validCategory(input.Category) {
		return nil, apperror.NewBadRequestError("Unknown category")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Price = money.FromDecimal(input.Price)
	product.Stock = input.Stock
	product.StockAlert = input.StockAlert
	product.ImageURL = input.ImageURL

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts returns products at or below their stock alert level
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetCategories returns the fixed category catalog
func (s *ProductService) GetCategories() []string {
	return Categories
}
