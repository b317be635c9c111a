package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
)

// InsufficientStockError reports products whose stock could not cover the
// requested quantities. The enclosing transaction is rolled back.
type InsufficientStockError struct {
	ProductIDs []uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d product(s)", len(e.ProductIDs))
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// Create persists the sale with its lines, decrements product stock and
	// increments the customer's sale counter in a single transaction.
	// Returns *InsufficientStockError if any product's stock is too low.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// Delete soft-deletes the sale and reverses its stock and counter effects
	// in a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// ListAll returns the full sale history for report aggregation
	ListAll(ctx context.Context) ([]entity.Sale, error)
}
