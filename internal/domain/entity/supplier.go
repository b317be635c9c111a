package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a product supplier
type Supplier struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName       string         `gorm:"size:255;not null" json:"full_name"`
	RUC            string         `gorm:"size:50;column:ruc" json:"ruc"`
	Address        string         `gorm:"type:text" json:"address"`
	Phone          string         `gorm:"size:50" json:"phone"`
	Email          string         `gorm:"size:255" json:"email"`
	PurchasesCount int            `gorm:"default:0" json:"purchases_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchases []Purchase `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
