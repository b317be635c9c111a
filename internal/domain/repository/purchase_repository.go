package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
)

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	// Create persists the purchase with its lines, increments product stock
	// and increments the supplier's purchase counter in a single transaction.
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	// Delete soft-deletes the purchase and reverses its stock and counter
	// effects in a single transaction. Returns *InsufficientStockError if the
	// received stock has already been sold on.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, params *pagination.PaginationParams) ([]entity.Purchase, int64, error)
	// ListAll returns the full purchase history for report aggregation
	ListAll(ctx context.Context) ([]entity.Purchase, error)
}
