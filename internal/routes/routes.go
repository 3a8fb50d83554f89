package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/config"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/handlers"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/middleware"
	"github.com/Bhavik9112/Stallion-Air-Con/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	storageService := services.NewStorageService(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)
	quoteService := services.NewQuoteService(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db)
	quoteHandler := handlers.NewQuoteHandler(db, quoteService, telegramService)
	queryHandler := handlers.NewQueryHandler(db, telegramService)
	adminHandler := handlers.NewAdminHandler(db)
	uploadHandler := handlers.NewUploadHandler(storageService)

	api := app.Group("/api")

	// Public storefront routes
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/categories/:slug", catalogHandler.GetCategoryBySlug)
	api.Get("/subcategories", catalogHandler.ListSubcategories)
	api.Get("/brands", catalogHandler.ListBrands)
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:slug", productHandler.GetProductBySlug)

	api.Post("/quotes", quoteHandler.SubmitQuote)
	api.Get("/quotes/:id", quoteHandler.GetQuote)
	api.Post("/queries", queryHandler.SubmitQuery)

	// Admin routes
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	protected := admin.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/dashboard", adminHandler.DashboardStats)
	protected.Post("/uploads", uploadHandler.UploadImage)

	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Put("/categories/:id", catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", catalogHandler.DeleteCategory)

	protected.Post("/subcategories", catalogHandler.CreateSubcategory)
	protected.Put("/subcategories/:id", catalogHandler.UpdateSubcategory)
	protected.Delete("/subcategories/:id", catalogHandler.DeleteSubcategory)

	protected.Post("/brands", catalogHandler.CreateBrand)
	protected.Put("/brands/:id", catalogHandler.UpdateBrand)
	protected.Delete("/brands/:id", catalogHandler.DeleteBrand)

	protected.Get("/products", productHandler.ListAllProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	protected.Get("/products/:id/files", productHandler.ListProductFiles)
	protected.Post("/products/:id/files", productHandler.CreateProductFile)
	protected.Delete("/products/:id/files/:fileId", productHandler.DeleteProductFile)

	protected.Get("/price-queries", quoteHandler.ListPriceQueries)
	protected.Put("/price-queries/:id/respond", quoteHandler.RespondPriceQuery)
	protected.Delete("/price-queries/:id", quoteHandler.DeletePriceQuery)

	protected.Get("/queries", queryHandler.ListQueries)
	protected.Put("/queries/:id/respond", queryHandler.RespondQuery)
	protected.Delete("/queries/:id", queryHandler.DeleteQuery)
}
