package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/middleware"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/services"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/utils"
)

// QueryHandler manages general contact-form submissions.
type QueryHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewQueryHandler constructs QueryHandler.
func NewQueryHandler(db *gorm.DB, telegram *services.TelegramService) *QueryHandler {
	return &QueryHandler{db: db, telegram: telegram}
}

type generalQueryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitQuery stores a contact-form message.
func (h *QueryHandler) SubmitQuery(c *fiber.Ctx) error {
	var req generalQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	message := req.Message
	if req.Subject != "" {
		message = req.Subject + "\n\n" + req.Message
	}

	query := models.GeneralQuery{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: message,
		Status:  models.QueryStatusPending,
	}

	if err := h.db.Create(&query).Error; err != nil {
		return err
	}

	if h.telegram != nil {
		go func() {
			if err := h.telegram.NotifyGeneralQuery(query); err != nil {
				log.Printf("[Query] Telegram notification failed: %v", err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": query})
}

// ListQueries returns paginated general queries for the admin area.
func (h *QueryHandler) ListQueries(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.GeneralQuery{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var queries []models.GeneralQuery
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&queries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    queries,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// RespondQuery records an admin response and marks the query responded.
func (h *QueryHandler) RespondQuery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req respondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var query models.GeneralQuery
	if err := h.db.First(&query, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "query not found")
		}
		return err
	}

	now := time.Now()
	query.Status = models.QueryStatusResponded
	query.AdminResponse = req.Response
	query.RespondedAt = &now
	if adminID, ok := middleware.GetCurrentAdminID(c); ok {
		query.RespondedBy = &adminID
	}

	if err := h.db.Save(&query).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": query})
}

// DeleteQuery removes a general query.
func (h *QueryHandler) DeleteQuery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.GeneralQuery{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
