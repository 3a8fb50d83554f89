package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/config"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/routes"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/utils"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	tables := []interface{}{
		&models.AdminUser{},
		&models.Category{},
		&models.Subcategory{},
		&models.Brand{},
		&models.Product{},
		&models.ProductFile{},
		&models.PriceQuery{},
		&models.QuoteItem{},
		&models.GeneralQuery{},
	}
	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
	}

	app := fiber.New()
	routes.Register(app, db, cfg)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body
}

func TestSubmitQuote_EndToEnd(t *testing.T) {
	app, db := newTestApp(t)

	product := models.Product{Name: "Compressor X", Slug: "compressor-x"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/quotes", map[string]interface{}{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"items": []map[string]interface{}{
			{"product_id": product.ID.String(), "name": "Compressor X", "quantity": 2},
			{"product_id": uuid.NewString(), "name": "Filter Y", "quantity": 5},
		},
	}, "")

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	queryID := data["query_id"].(string)
	if queryID == "" {
		t.Fatal("no query id returned")
	}

	// Confirmation lookup returns both lines with their quantities.
	resp = doJSON(t, app, http.MethodGet, "/api/quotes/"+queryID, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	body = decodeBody(t, resp)
	quote := body["data"].(map[string]interface{})
	items := quote["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
}

func TestSubmitQuote_ValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"empty cart", map[string]interface{}{
			"customer_name":  "Jane Doe",
			"customer_email": "jane@example.com",
			"items":          []map[string]interface{}{},
		}},
		{"bad email", map[string]interface{}{
			"customer_name":  "Jane Doe",
			"customer_email": "not-an-email",
			"items": []map[string]interface{}{
				{"product_id": uuid.NewString(), "name": "Filter Y", "quantity": 1},
			},
		}},
	}

	for _, tc := range cases {
		resp := doJSON(t, app, http.MethodPost, "/api/quotes", tc.payload, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", tc.name, resp.StatusCode)
		}
	}
}

func TestSubmitGeneralQuery(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/queries", map[string]interface{}{
		"name":    "John Smith",
		"email":   "john@example.com",
		"subject": "Spare parts",
		"message": "Do you stock condenser coils?",
	}, "")

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}

	var query models.GeneralQuery
	if err := db.First(&query).Error; err != nil {
		t.Fatal(err)
	}
	if query.Status != models.QueryStatusPending {
		t.Fatalf("want pending status, got %q", query.Status)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/dashboard", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 without token, got %d", resp.StatusCode)
	}

	hash, err := utils.HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	admin := models.AdminUser{Name: "Admin", Email: "admin@stallion.test", PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email":    "admin@stallion.test",
		"password": "hunter2",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: want 200, got %d", resp.StatusCode)
	}

	token := decodeBody(t, resp)["token"].(string)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/dashboard", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200 with token, got %d", resp.StatusCode)
	}
}

func TestRespondPriceQuery(t *testing.T) {
	app, db := newTestApp(t)

	query := models.PriceQuery{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Status:        models.QueryStatusPending,
	}
	if err := db.Create(&query).Error; err != nil {
		t.Fatal(err)
	}

	token := adminToken(t, app, db)

	path := fmt.Sprintf("/api/admin/price-queries/%s/respond", query.ID)
	resp := doJSON(t, app, http.MethodPut, path, map[string]interface{}{
		"response": "Quote attached, valid 30 days.",
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var updated models.PriceQuery
	if err := db.First(&updated, "id = ?", query.ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.QueryStatusResponded {
		t.Fatalf("want responded, got %q", updated.Status)
	}
	if updated.RespondedAt == nil {
		t.Fatal("responded_at not set")
	}

	var admin models.AdminUser
	if err := db.First(&admin, "email = ?", "admin@stallion.test").Error; err != nil {
		t.Fatal(err)
	}
	if updated.RespondedBy == nil || *updated.RespondedBy != admin.ID {
		t.Fatalf("response not attributed to acting admin: got %v", updated.RespondedBy)
	}
}

func adminToken(t *testing.T, app *fiber.App, db *gorm.DB) string {
	t.Helper()

	hash, err := utils.HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	admin := models.AdminUser{Name: "Admin", Email: "admin@stallion.test", PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email":    "admin@stallion.test",
		"password": "hunter2",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}
	return decodeBody(t, resp)["token"].(string)
}
