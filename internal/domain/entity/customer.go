package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a store customer
type Customer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName   string         `gorm:"size:255;not null" json:"full_name"`
	RUC        string         `gorm:"size:50;column:ruc" json:"ruc"`
	Address    string         `gorm:"type:text" json:"address"`
	Phone      string         `gorm:"size:50" json:"phone"`
	Email      string         `gorm:"size:255" json:"email"`
	SalesCount int            `gorm:"default:0" json:"sales_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
