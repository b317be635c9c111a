package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
	"github.com/mvaldezl/ferreteria-api/pkg/money"
	"gorm.io/gorm"
)

// Purchase represents a completed purchase order placed with a supplier
type Purchase struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"counterpart_id"`
	SupplierName  string             `gorm:"size:255;not null" json:"counterpart_name"` // snapshot at creation
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	Total         int64              `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"-"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier      `gorm:"foreignKey:SupplierID" json:"-"`
	Lines    []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: money.ToDecimal(p.Total),
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseLine represents a line item in a purchase. Name and UnitPrice are
// snapshots taken when the line was added.
type PurchaseLine struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	PurchaseID uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	UnitPrice  int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Subtotal   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l PurchaseLine) MarshalJSON() ([]byte, error) {
	type Alias PurchaseLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(l),
		UnitPrice: money.ToDecimal(l.UnitPrice),
		Subtotal:  money.ToDecimal(l.Subtotal),
	})
}

// BeforeCreate generates a UUID before creating a new purchase line
func (l *PurchaseLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseLine model
func (PurchaseLine) TableName() string {
	return "purchase_lines"
}
