package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/utils"
)

// ProductHandler manages product CRUD and public product lookups.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListProducts returns paginated active products with optional filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	return h.listProducts(c, true)
}

// ListAllProducts returns paginated products regardless of status.
func (h *ProductHandler) ListAllProducts(c *fiber.Ctx) error {
	return h.listProducts(c, false)
}

func (h *ProductHandler) listProducts(c *fiber.Ctx, activeOnly bool) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if activeOnly {
		query = query.Where("status = ?", models.ProductStatusActive)
	}

	if v := c.Query("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}

	if v := c.Query("subcategory_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("subcategory_id = ?", id)
		}
	}

	if v := c.Query("brand_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("brand_id = ?", id)
		}
	}

	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Brand").Preload("Category").
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProductBySlug loads an active product with its relations and files.
func (h *ProductHandler) GetProductBySlug(c *fiber.Ctx) error {
	var product models.Product
	if err := h.db.Preload("Brand").
		Preload("Category").
		Preload("Subcategory").
		Preload("Files").
		First(&product, "slug = ? AND status = ?", c.Params("slug"), models.ProductStatusActive).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// GetProduct loads a product by ID for the admin area, inactive included.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.Preload("Brand").
		Preload("Category").
		Preload("Subcategory").
		Preload("Files").
		First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	Slug           string                 `json:"slug"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Specifications map[string]interface{} `json:"specifications"`
	Features       []string               `json:"features"`
	ImageURL       string                 `json:"image_url"`
	GalleryURLs    []string               `json:"gallery_urls"`
	IsFeatured     bool                   `json:"is_featured"`
	Status         string                 `json:"status"`
	CategoryID     string                 `json:"category_id"`
	SubcategoryID  string                 `json:"subcategory_id"`
	BrandID        string                 `json:"brand_id"`
}

// CreateProduct handles product creation.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces an existing product's fields.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := h.db.Model(&existing).Select("*").Omit("id", "created_at").Updates(product).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// DeleteProduct removes a product together with its files.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListProductFiles returns the downloadable assets of a product.
func (h *ProductHandler) ListProductFiles(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var files []models.ProductFile
	if err := h.db.Where("product_id = ?", id).Order("created_at asc").Find(&files).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": files})
}

// CreateProductFile attaches a downloadable asset to a product.
func (h *ProductHandler) CreateProductFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.ProductFile
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.ProductID = id

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// DeleteProductFile removes a downloadable asset.
func (h *ProductHandler) DeleteProductFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("fileId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.ProductFile{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func buildProductFromRequest(req productRequest) (models.Product, error) {
	product := models.Product{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Features:    pq.StringArray(req.Features),
		ImageURL:    req.ImageURL,
		GalleryURLs: pq.StringArray(req.GalleryURLs),
		IsFeatured:  req.IsFeatured,
		Status:      req.Status,
	}

	if product.Slug == "" {
		product.Slug = utils.Slugify(product.Name)
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}
	if product.Status != models.ProductStatusActive && product.Status != models.ProductStatusInactive {
		return product, errors.New("status must be active or inactive")
	}

	if req.Specifications != nil {
		product.Specifications = datatypes.JSONMap(req.Specifications)
	}

	if req.CategoryID == "" {
		return product, errors.New("category_id is required")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return product, errors.New("invalid category_id")
	}
	product.CategoryID = categoryID

	if req.SubcategoryID != "" {
		id, err := uuid.Parse(req.SubcategoryID)
		if err != nil {
			return product, errors.New("invalid subcategory_id")
		}
		product.SubcategoryID = &id
	}

	if req.BrandID != "" {
		id, err := uuid.Parse(req.BrandID)
		if err != nil {
			return product, errors.New("invalid brand_id")
		}
		product.BrandID = &id
	}

	return product, nil
}
