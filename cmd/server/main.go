package main

import (
	"log"
	"strings"

	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/catalog"
	"adisyon-backend/internal/config"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/media"
	"adisyon-backend/internal/order"
	"adisyon-backend/internal/table"
	"adisyon-backend/internal/transaction"
	"adisyon-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	verifier := auth.NewBcryptVerifier(cfg.AdminPasswordHash)

	orderSvc := order.NewService(
		order.NewGormTableStore(),
		order.NewGormItemStore(),
		order.NewGormTransactionStore(),
		order.NewGormProductStore(),
	)
	txSvc := transaction.NewService(transaction.NewGormStore(), audit.NewGormLogger())

	mediaStorage, err := media.NewLocalStorage(cfg.MediaStoragePath, cfg.MediaPublicBase)
	if err != nil {
		log.Fatalf("Medya storage hazırlanamadı: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Yüklenen medya dosyaları
	app.Static("/media", cfg.MediaStoragePath)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, verifier))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler())
	protected.Post("/auth/elevate", auth.ElevateHandler(verifier))
	protected.Get("/auth/me", auth.MeHandler())

	// Masa grid'i ve adisyon ekranı
	protected.Get("/tables", table.ListTablesHandler())
	protected.Get("/tables/:id", table.GetTableHandler())
	protected.Get("/tables/:id/detail", order.TableDetailHandler(orderSvc))
	protected.Get("/tables/:id/items", order.ListTableItemsHandler(orderSvc))
	protected.Post("/tables/:id/items", order.AddItemHandler(orderSvc))
	protected.Post("/tables/:id/close", order.CloseTableHandler(orderSvc))
	protected.Delete("/table-items/:id", order.RemoveItemHandler(orderSvc))

	// Menü
	protected.Get("/product-groups", catalog.ListGroupsHandler())
	protected.Get("/products", catalog.ListProductsHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireAdmin())

	// Menü yönetimi
	adminRoutes.Post("/product-groups", catalog.CreateGroupHandler())
	adminRoutes.Put("/product-groups/:id", catalog.UpdateGroupHandler())
	adminRoutes.Delete("/product-groups/:id", catalog.DeleteGroupHandler())
	adminRoutes.Post("/products", catalog.CreateProductHandler())
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler())

	// Masa yönetimi
	adminRoutes.Post("/tables", table.CreateTableHandler())
	adminRoutes.Put("/tables/:id", table.UpdateTableHandler())
	adminRoutes.Delete("/tables/:id", table.DeleteTableHandler())

	// Kullanıcı yönetimi
	adminRoutes.Get("/users", users.ListUsersHandler())
	adminRoutes.Post("/users", users.CreateUserHandler())
	adminRoutes.Put("/users/:id", users.UpdateUserHandler())
	adminRoutes.Delete("/users/:id", users.DeleteUserHandler())

	// Raporlama ve transaction düzenleme
	adminRoutes.Get("/transactions", transaction.ListTransactionsHandler())
	adminRoutes.Delete("/transactions/:id/items/:index", transaction.DeleteItemHandler(txSvc))
	adminRoutes.Put("/transactions/:id/total", transaction.UpdateTotalHandler(txSvc))
	adminRoutes.Delete("/transactions/:id", transaction.DeleteTransactionHandler(txSvc))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Medya kütüphanesi
	adminRoutes.Get("/media", media.ListMediaHandler())
	adminRoutes.Post("/media", media.UploadMediaHandler(mediaStorage))
	adminRoutes.Delete("/media/:id", media.DeleteMediaHandler(mediaStorage))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
