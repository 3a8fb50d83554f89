package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProductStatus values accepted for Product.Status.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	BaseModel
	Slug           string            `gorm:"uniqueIndex" json:"slug"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Specifications datatypes.JSONMap `json:"specifications"`
	Features       pq.StringArray    `gorm:"type:text[]" json:"features"`
	ImageURL       string            `json:"image_url"`
	GalleryURLs    pq.StringArray    `gorm:"type:text[]" json:"gallery_urls"`
	IsFeatured     bool              `json:"is_featured"`
	Status         string            `gorm:"default:active" json:"status"`
	CategoryID     uuid.UUID         `gorm:"type:uuid;index" json:"category_id"`
	Category       *Category         `json:"category,omitempty"`
	SubcategoryID  *uuid.UUID        `gorm:"type:uuid;index" json:"subcategory_id"`
	Subcategory    *Subcategory      `json:"subcategory,omitempty"`
	BrandID        *uuid.UUID        `gorm:"type:uuid;index" json:"brand_id"`
	Brand          *Brand            `json:"brand,omitempty"`
	Files          []ProductFile     `json:"files,omitempty"`
}

// ProductFile is a downloadable asset attached to a product, such as a
// spec sheet or installation manual.
type ProductFile struct {
	BaseModel
	ProductID   uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	FileType    string    `json:"file_type"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	FileSize    int64     `json:"file_size"`
	Description string    `json:"description"`
}
