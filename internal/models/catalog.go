package models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name          string        `json:"name"`
	Slug          string        `gorm:"uniqueIndex" json:"slug"`
	Description   string        `json:"description"`
	DisplayOrder  int           `json:"display_order"`
	ImageURL      string        `json:"image_url"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	Products      []Product     `json:"products,omitempty"`
}

type Subcategory struct {
	BaseModel
	CategoryID   uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category     *Category `json:"category,omitempty"`
	Name         string    `json:"name"`
	Slug         string    `gorm:"uniqueIndex" json:"slug"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	ImageURL     string    `json:"image_url"`
	Products     []Product `json:"products,omitempty"`
}

type Brand struct {
	BaseModel
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	Products    []Product `json:"products,omitempty"`
}
