package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/services"
)

// Folders accepted by the upload endpoint, one per entity type.
var allowedUploadFolders = map[string]bool{
	"products":   true,
	"categories": true,
	"brands":     true,
}

// UploadHandler accepts image uploads for catalog records.
type UploadHandler struct {
	storage *services.StorageService
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(storage *services.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage stores a multipart image and returns its public URL. When the
// storage bucket is unavailable the returned URL is a base64 data URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}

	folder := c.FormValue("folder", "products")
	if !allowedUploadFolders[folder] {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable file")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(services.ObjectPath(folder, fileHeader.Filename), data, contentType)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"url": url}})
}
