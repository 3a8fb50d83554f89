package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns aggregate counts for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalProducts int64
	if err := h.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return err
	}

	var totalCategories int64
	if err := h.db.Model(&models.Category{}).Count(&totalCategories).Error; err != nil {
		return err
	}

	var totalBrands int64
	if err := h.db.Model(&models.Brand{}).Count(&totalBrands).Error; err != nil {
		return err
	}

	var pendingQueries int64
	if err := h.db.Model(&models.GeneralQuery{}).
		Where("status = ?", models.QueryStatusPending).
		Count(&pendingQueries).Error; err != nil {
		return err
	}

	var pendingPriceQueries int64
	if err := h.db.Model(&models.PriceQuery{}).
		Where("status = ?", models.QueryStatusPending).
		Count(&pendingPriceQueries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_products":        totalProducts,
			"total_categories":      totalCategories,
			"total_brands":          totalBrands,
			"pending_queries":       pendingQueries,
			"pending_price_queries": pendingPriceQueries,
		},
	})
}
