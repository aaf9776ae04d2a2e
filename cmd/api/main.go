package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-autoshop/internal/handler"
	"go-autoshop/internal/middleware"
	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
	"go-autoshop/internal/service"
	"go-autoshop/internal/ws"
	"go-autoshop/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.InventoryItem{},
		&model.SaleTransaction{},
		&model.SaleItem{},
		&model.Quote{},
		&model.QuoteItem{},
		&model.Appointment{},
		&model.Customer{},
	)

	// 3. Seed the default shop owner
	seedShopOwner(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	quoteRepo := repository.NewQuoteRepo(db)
	apptRepo := repository.NewAppointmentRepo(db)
	customerRepo := repository.NewCustomerRepo(db)

	authService := service.NewAuthService(userRepo)
	accountService := service.NewAccountService(userRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, wsHub)
	salesService := service.NewSalesService(saleRepo, inventoryRepo, customerRepo, userRepo, db, wsHub)
	quoteService := service.NewQuoteService(quoteRepo, saleRepo, customerRepo, userRepo, db, wsHub)
	apptService := service.NewAppointmentService(apptRepo, wsHub)
	reportService := service.NewReportService(saleRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	salesHandler := handler.NewSalesHandler(salesService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	apptHandler := handler.NewAppointmentHandler(apptService)
	reportHandler := handler.NewReportHandler(reportService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "AutoShop Dashboard v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication; the owner email from
	// the JWT scopes every query.
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Inventory
	protected.Get("/inventory", inventoryHandler.GetItems)
	protected.Get("/inventory/categories", inventoryHandler.GetCategories)
	protected.Post("/inventory", inventoryHandler.AddItem)
	protected.Put("/inventory/:id", inventoryHandler.UpdateItem)
	protected.Delete("/inventory/:id", inventoryHandler.DeleteItem)

	// Sales
	protected.Get("/sales", salesHandler.GetSales)
	protected.Post("/sales", salesHandler.FinalizeSale)
	protected.Delete("/sales/:id", salesHandler.DeleteSale)
	protected.Get("/customers", salesHandler.GetCustomers)

	// Quotes
	protected.Get("/quotes", quoteHandler.GetQuotes)
	protected.Post("/quotes", quoteHandler.SaveQuote)
	protected.Put("/quotes/:id", quoteHandler.UpdateQuote)
	protected.Delete("/quotes/:id", quoteHandler.DeleteQuote)
	protected.Post("/quotes/:id/convert", quoteHandler.ConvertToInvoice)

	// Appointments
	protected.Get("/appointments", apptHandler.GetAppointments)
	protected.Get("/appointments/options", apptHandler.GetBookingOptions)
	protected.Post("/appointments", apptHandler.BookAppointment)
	protected.Put("/appointments/:id", apptHandler.UpdateAppointment)
	protected.Patch("/appointments/:id/status", apptHandler.ChangeStatus)
	protected.Delete("/appointments/:id", apptHandler.DeleteAppointment)

	// Reports
	protected.Get("/reports/sales", reportHandler.GetSalesReport)
	protected.Get("/reports/dashboard", reportHandler.GetDashboardStats)
	protected.Post("/reports/unlock", reportHandler.UnlockReports)

	// Account / shop profile
	protected.Get("/account", accountHandler.GetProfile)
	protected.Put("/account", accountHandler.UpdateProfile)
	protected.Put("/account/reports-password", accountHandler.SetReportsPassword)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedShopOwner creates the default shop owner account if it doesn't exist
func seedShopOwner(db *gorm.DB) {
	email := os.Getenv("SHOP_EMAIL")
	if email == "" {
		email = "owner@example.com"
	}
	password := os.Getenv("SHOP_PASSWORD")
	if password == "" {
		password = "owner123"
	}

	userRepo := repository.NewUserRepo(db)
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	owner := &model.User{
		Email:             email,
		ShopName:          os.Getenv("SHOP_NAME"),
		LastInvoiceNumber: model.InvoiceNumberBase,
		IsActive:          true,
	}
	owner.CreatedBy = "system"
	owner.UpdatedBy = "system"

	if err := owner.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash owner password: %v", err)
		return
	}

	if err := userRepo.Create(owner); err != nil {
		log.Printf("Warning: Failed to create shop owner: %v", err)
	} else {
		log.Printf("✅ Shop owner created: %s", email)
	}
}
