package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	domainRepo "github.com/mvaldezl/ferreteria-api/internal/domain/repository"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create records the purchase, increments stock and bumps the supplier's
// purchase counter in one transaction.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range purchase.Lines {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", line.ProductID).
				Update("stock", gorm.Expr("stock + ?", line.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Supplier{}).
			Where("id = ?", purchase.SupplierID).
			Update("purchases_count", gorm.Expr("purchases_count + 1")).Error
	})
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

// Delete soft-deletes the purchase and undoes its side effects. Removing the
// received stock is guarded: if part of it has already been sold on, the
// delete fails instead of driving stock negative.
func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase entity.Purchase
		if err := tx.Preload("Lines").First(&purchase, "id = ?", id).Error; err != nil {
			return err
		}

		var failedIDs []uuid.UUID
		for _, line := range purchase.Lines {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, line.ProductID)
			}
		}
		if len(failedIDs) > 0 {
			return &domainRepo.InsufficientStockError{ProductIDs: failedIDs}
		}

		if err := tx.Model(&entity.Supplier{}).
			Where("id = ? AND purchases_count > 0", purchase.SupplierID).
			Update("purchases_count", gorm.Expr("purchases_count - 1")).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.PurchaseLine{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Purchase{}, "id = ?", id).Error
	})
}

func (r *purchaseRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Lines").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&purchases).Error

	return purchases, total, err
}

func (r *purchaseRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{}).Where("supplier_id = ?", supplierID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Lines").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&purchases).Error

	return purchases, total, err
}

// ListAll returns every purchase without lines, enough for report aggregation
func (r *purchaseRepository) ListAll(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).Find(&purchases).Error
	return purchases, err
}
