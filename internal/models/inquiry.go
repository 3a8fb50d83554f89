package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry status values shared by PriceQuery and GeneralQuery.
const (
	QueryStatusPending   = "pending"
	QueryStatusResponded = "responded"
)

// PriceQuery is the header of a multi-product price request.
type PriceQuery struct {
	BaseModel
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerCompany string      `json:"customer_company"`
	Message         string      `json:"message"`
	Status          string      `gorm:"default:pending" json:"status"`
	AdminResponse   string      `json:"admin_response"`
	RespondedAt     *time.Time  `json:"responded_at"`
	RespondedBy     *uuid.UUID  `gorm:"type:uuid" json:"responded_by"`
	Items           []QuoteItem `gorm:"foreignKey:QueryID" json:"items,omitempty"`
}

// QuoteItem is a single product line of a price request. Name is a
// snapshot taken at submission time so the quote survives later renames.
type QuoteItem struct {
	BaseModel
	QueryID   uuid.UUID `gorm:"type:uuid;index" json:"query_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}

// GeneralQuery is a contact-form submission.
type GeneralQuery struct {
	BaseModel
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Message       string     `json:"message"`
	Status        string     `gorm:"default:pending" json:"status"`
	AdminResponse string     `json:"admin_response"`
	RespondedAt   *time.Time `json:"responded_at"`
	RespondedBy   *uuid.UUID `gorm:"type:uuid" json:"responded_by"`
}
