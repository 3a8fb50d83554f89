package seed

import (
	"fmt"
	"os"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/utils"
)

// File is the YAML layout of a catalog seed file.
type File struct {
	Categories []CategorySeed `yaml:"categories"`
	Brands     []BrandSeed    `yaml:"brands"`
	Products   []ProductSeed  `yaml:"products"`
}

type CategorySeed struct {
	Name          string            `yaml:"name"`
	Slug          string            `yaml:"slug"`
	Description   string            `yaml:"description"`
	DisplayOrder  int               `yaml:"display_order"`
	ImageURL      string            `yaml:"image_url"`
	Subcategories []SubcategorySeed `yaml:"subcategories"`
}

type SubcategorySeed struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	DisplayOrder int    `yaml:"display_order"`
}

type BrandSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	LogoURL     string `yaml:"logo_url"`
}

type ProductSeed struct {
	Name           string            `yaml:"name"`
	Slug           string            `yaml:"slug"`
	Category       string            `yaml:"category"`
	Subcategory    string            `yaml:"subcategory"`
	Brand          string            `yaml:"brand"`
	Description    string            `yaml:"description"`
	Specifications map[string]string `yaml:"specifications"`
	Features       []string          `yaml:"features"`
	ImageURL       string            `yaml:"image_url"`
	Featured       bool              `yaml:"featured"`
	Status         string            `yaml:"status"`
}

// Load reads and parses a catalog seed file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &file, nil
}

// Apply upserts the seed file contents into the catalog, keyed by slug for
// categories, subcategories, and products, and by name for brands. Running
// it twice leaves the catalog unchanged.
func Apply(db *gorm.DB, file *File) error {
	for _, cs := range file.Categories {
		slug := cs.Slug
		if slug == "" {
			slug = utils.Slugify(cs.Name)
		}

		category := models.Category{Slug: slug}
		if err := db.Where("slug = ?", slug).
			Assign(models.Category{
				Name:         cs.Name,
				Description:  cs.Description,
				DisplayOrder: cs.DisplayOrder,
				ImageURL:     cs.ImageURL,
			}).
			FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("category %q: %w", cs.Name, err)
		}

		for _, ss := range cs.Subcategories {
			subSlug := ss.Slug
			if subSlug == "" {
				subSlug = utils.Slugify(ss.Name)
			}

			subcategory := models.Subcategory{Slug: subSlug}
			if err := db.Where("slug = ?", subSlug).
				Assign(models.Subcategory{
					CategoryID:   category.ID,
					Name:         ss.Name,
					Description:  ss.Description,
					DisplayOrder: ss.DisplayOrder,
				}).
				FirstOrCreate(&subcategory).Error; err != nil {
				return fmt.Errorf("subcategory %q: %w", ss.Name, err)
			}
		}
	}

	for _, bs := range file.Brands {
		brand := models.Brand{Name: bs.Name}
		if err := db.Where("name = ?", bs.Name).
			Assign(models.Brand{
				Name:        bs.Name,
				Description: bs.Description,
				LogoURL:     bs.LogoURL,
			}).
			FirstOrCreate(&brand).Error; err != nil {
			return fmt.Errorf("brand %q: %w", bs.Name, err)
		}
	}

	for _, ps := range file.Products {
		product, err := buildProduct(db, ps)
		if err != nil {
			return err
		}

		if err := db.Where("slug = ?", product.Slug).
			Assign(product).
			FirstOrCreate(&models.Product{}).Error; err != nil {
			return fmt.Errorf("product %q: %w", ps.Name, err)
		}
	}

	return nil
}

func buildProduct(db *gorm.DB, ps ProductSeed) (models.Product, error) {
	slug := ps.Slug
	if slug == "" {
		slug = utils.Slugify(ps.Name)
	}

	status := ps.Status
	if status == "" {
		status = models.ProductStatusActive
	}

	product := models.Product{
		Name:        ps.Name,
		Slug:        slug,
		Description: ps.Description,
		Features:    pq.StringArray(ps.Features),
		ImageURL:    ps.ImageURL,
		IsFeatured:  ps.Featured,
		Status:      status,
	}

	if len(ps.Specifications) > 0 {
		specs := make(datatypes.JSONMap, len(ps.Specifications))
		for k, v := range ps.Specifications {
			specs[k] = v
		}
		product.Specifications = specs
	}

	var category models.Category
	if err := db.First(&category, "slug = ?", ps.Category).Error; err != nil {
		return product, fmt.Errorf("product %q: unknown category %q", ps.Name, ps.Category)
	}
	product.CategoryID = category.ID

	if ps.Subcategory != "" {
		var subcategory models.Subcategory
		if err := db.First(&subcategory, "slug = ?", ps.Subcategory).Error; err != nil {
			return product, fmt.Errorf("product %q: unknown subcategory %q", ps.Name, ps.Subcategory)
		}
		product.SubcategoryID = &subcategory.ID
	}

	if ps.Brand != "" {
		var brand models.Brand
		if err := db.First(&brand, "name = ?", ps.Brand).Error; err != nil {
			return product, fmt.Errorf("product %q: unknown brand %q", ps.Name, ps.Brand)
		}
		product.BrandID = &brand.ID
	}

	return product, nil
}
