package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/pkg/money"
	"gorm.io/gorm"
)

// Product represents an item in the store catalog
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Price       int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Stock       int            `gorm:"default:0" json:"stock"`
	StockAlert  int            `gorm:"default:0" json:"stock_alert"`
	ImageURL    *string        `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: money.ToDecimal(p.Price),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return money.ToDecimal(p.Price)
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = money.FromDecimal(price)
}

// IsLowStock reports whether stock has reached the alert threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.StockAlert
}
