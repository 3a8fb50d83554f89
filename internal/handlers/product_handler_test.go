package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
)

func listedNames(t *testing.T, resp *http.Response) map[string]bool {
	t.Helper()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	names := map[string]bool{}
	for _, item := range decodeBody(t, resp)["data"].([]interface{}) {
		product := item.(map[string]interface{})
		names[product["name"].(string)] = true
	}
	return names
}

func TestListProducts_ActiveOnly(t *testing.T) {
	app, db := newTestApp(t)

	category := models.Category{Name: "Compressors", Slug: "compressors"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}

	products := []models.Product{
		{Name: "Scroll Compressor", Slug: "scroll-compressor", CategoryID: category.ID, Status: models.ProductStatusActive},
		{Name: "Retired Compressor", Slug: "retired-compressor", CategoryID: category.ID, Status: models.ProductStatusInactive},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	names := listedNames(t, doJSON(t, app, http.MethodGet, "/api/products", nil, ""))
	if !names["Scroll Compressor"] || names["Retired Compressor"] {
		t.Fatalf("public listing must hide inactive products, got %v", names)
	}

	token := adminToken(t, app, db)
	names = listedNames(t, doJSON(t, app, http.MethodGet, "/api/admin/products", nil, token))
	if !names["Scroll Compressor"] || !names["Retired Compressor"] {
		t.Fatalf("admin listing must include inactive products, got %v", names)
	}
}

func TestListProducts_Filters(t *testing.T) {
	app, db := newTestApp(t)

	compressors := models.Category{Name: "Compressors", Slug: "compressors"}
	filters := models.Category{Name: "Filters", Slug: "filters"}
	for _, category := range []*models.Category{&compressors, &filters} {
		if err := db.Create(category).Error; err != nil {
			t.Fatal(err)
		}
	}

	scroll := models.Subcategory{CategoryID: compressors.ID, Name: "Scroll", Slug: "scroll"}
	if err := db.Create(&scroll).Error; err != nil {
		t.Fatal(err)
	}
	daikin := models.Brand{Name: "Daikin"}
	if err := db.Create(&daikin).Error; err != nil {
		t.Fatal(err)
	}

	products := []models.Product{
		{Name: "Scroll Compressor", Slug: "scroll-compressor", CategoryID: compressors.ID, SubcategoryID: &scroll.ID, BrandID: &daikin.ID, Status: models.ProductStatusActive, IsFeatured: true},
		{Name: "Rotary Compressor", Slug: "rotary-compressor", CategoryID: compressors.ID, Status: models.ProductStatusActive},
		{Name: "Air Filter", Slug: "air-filter", CategoryID: filters.ID, Status: models.ProductStatusActive},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	names := listedNames(t, doJSON(t, app, http.MethodGet, "/api/products?category_id="+compressors.ID.String(), nil, ""))
	if len(names) != 2 || names["Air Filter"] {
		t.Fatalf("category filter: got %v", names)
	}

	names = listedNames(t, doJSON(t, app, http.MethodGet, "/api/products?subcategory_id="+scroll.ID.String(), nil, ""))
	if len(names) != 1 || !names["Scroll Compressor"] {
		t.Fatalf("subcategory filter: got %v", names)
	}

	names = listedNames(t, doJSON(t, app, http.MethodGet, "/api/products?brand_id="+daikin.ID.String(), nil, ""))
	if len(names) != 1 || !names["Scroll Compressor"] {
		t.Fatalf("brand filter: got %v", names)
	}

	names = listedNames(t, doJSON(t, app, http.MethodGet, "/api/products?featured=true", nil, ""))
	if len(names) != 1 || !names["Scroll Compressor"] {
		t.Fatalf("featured filter: got %v", names)
	}
}

func TestListProducts_Search(t *testing.T) {
	app, db := newTestApp(t)

	category := models.Category{Name: "Compressors", Slug: "compressors"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}

	products := []models.Product{
		{Name: "Scroll Compressor", Slug: "scroll-compressor", CategoryID: category.ID, Status: models.ProductStatusActive},
		{Name: "Spare Kit", Slug: "spare-kit", Description: "Gaskets for rotary compressors", CategoryID: category.ID, Status: models.ProductStatusActive},
		{Name: "Old Compressor", Slug: "old-compressor", CategoryID: category.ID, Status: models.ProductStatusInactive},
		{Name: "Air Filter", Slug: "air-filter", CategoryID: category.ID, Status: models.ProductStatusActive},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	// Case-insensitive, matches name or description, still hides inactive rows.
	names := listedNames(t, doJSON(t, app, http.MethodGet, "/api/products?search=COMPRESSOR", nil, ""))
	if !names["Scroll Compressor"] || !names["Spare Kit"] {
		t.Fatalf("search missed matches: got %v", names)
	}
	if names["Old Compressor"] || names["Air Filter"] {
		t.Fatalf("search returned unexpected rows: got %v", names)
	}
}
