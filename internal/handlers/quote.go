package handlers

import (
	"errors"
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

// QuoteHandler exposes the multi-product quote workflow and the admin
// price-query surface.
type QuoteHandler struct {
	db       *gorm.DB
	quotes   *services.QuoteService
	telegram *services.TelegramService
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(db *gorm.DB, quotes *services.QuoteService, telegram *services.TelegramService) *QuoteHandler {
	return &QuoteHandler{db: db, quotes: quotes, telegram: telegram}
}

type submitQuoteRequest struct {
	CustomerName    string                    `json:"customer_name"`
	CustomerEmail   string                    `json:"customer_email"`
	CustomerPhone   string                    `json:"customer_phone"`
	CustomerCompany string                    `json:"customer_company"`
	Message         string                    `json:"message"`
	Items           []services.QuoteItemInput `json:"items"`
}

// SubmitQuote accepts a customer's multi-product price request.
func (h *QuoteHandler) SubmitQuote(c *fiber.Ctx) error {
	var req submitQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	receipt, err := h.quotes.Submit(services.QuoteSubmission{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerCompany: req.CustomerCompany,
		Message:         req.Message,
		Items:           req.Items,
	})
	if err != nil {
		var itemErr *services.ItemInsertError
		switch {
		case errors.Is(err, services.ErrEmptyQuote),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidItem):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.As(err, &itemErr):
			log.Printf("[Quote] header %s persisted without items: %v", itemErr.QueryID, itemErr.Err)
			return fiber.NewError(fiber.StatusInternalServerError, itemErr.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	if h.telegram != nil {
		if query, err := h.quotes.GetQuote(receipt.QueryID); err == nil {
			go func() {
				if err := h.telegram.NotifyPriceQuery(*query, query.Items); err != nil {
					log.Printf("[Quote] Telegram notification failed: %v", err)
				}
			}()
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": receipt})
}

// GetQuote returns a price query with its line items.
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	query, err := h.quotes.GetQuote(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "price query not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": query})
}

// ListPriceQueries returns paginated price queries for the admin area.
func (h *QuoteHandler) ListPriceQueries(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.PriceQuery{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var queries []models.PriceQuery
	if err := query.Preload("Items").
		Order("created_at desc").
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

type respondRequest struct {
	Response string `json:"response"`
}

// RespondPriceQuery records an admin response and marks the query responded.
func (h *QuoteHandler) RespondPriceQuery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req respondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var query models.PriceQuery
	if err := h.db.First(&query, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "price query not found")
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

// DeletePriceQuery removes a price query together with its items.
func (h *QuoteHandler) DeletePriceQuery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("query_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PriceQuery{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
