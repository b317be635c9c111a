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

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create records the sale, decrements stock and bumps the customer's sale
// counter in one transaction. Stock decrements are guarded so a concurrent
// sale cannot drive stock negative; any shortfall rolls back everything.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var failedIDs []uuid.UUID
		for _, line := range sale.Lines {
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

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Customer{}).
			Where("id = ?", sale.CustomerID).
			Update("sales_count", gorm.Expr("sales_count + 1")).Error
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

// Delete soft-deletes the sale and undoes its side effects: stock returns to
// the products and the customer's counter goes back down.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale entity.Sale
		if err := tx.Preload("Lines").First(&sale, "id = ?", id).Error; err != nil {
			return err
		}

		for _, line := range sale.Lines {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", line.ProductID).
				Update("stock", gorm.Expr("stock + ?", line.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entity.Customer{}).
			Where("id = ? AND sales_count > 0", sale.CustomerID).
			Update("sales_count", gorm.Expr("sales_count - 1")).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.SaleLine{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}

func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Lines").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Where("customer_id = ?", customerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Lines").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

// ListAll returns every sale without lines, enough for report aggregation
func (r *saleRepository) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).Find(&sales).Error
	return sales, err
}
