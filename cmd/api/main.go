package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"andaman/internal/config"
	"andaman/internal/database"
	"andaman/internal/middleware"
	"andaman/internal/modules/auth"
	"andaman/internal/modules/catalog"
	"andaman/internal/modules/notification"
	"andaman/internal/modules/services"
	"andaman/internal/modules/upload"
	"andaman/internal/modules/vendor"
	jwtsvc "andaman/internal/pkg/jwt"
	"andaman/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	islandRepo := repository.NewIslandRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notification.NewHub()

	authService := auth.NewService(userRepo, vendorRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(islandRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	vendorService := vendor.NewService(vendorRepo, serviceRepo, bookingRepo, reviewRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	servicesService := services.NewService(vendorRepo, serviceRepo, hub)
	servicesHandler := services.NewHandler(servicesService)

	uploadService := upload.NewService(cfg.UploadDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	wsHandler := notification.NewWSHandler(hub, j)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadDir)
	r.GET("/ws/vendor", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			vendorOnly := protected.Group("")
			vendorOnly.Use(middleware.VendorOnly())
			{
				vendorHandler.RegisterRoutes(vendorOnly)
				servicesHandler.RegisterRoutes(vendorOnly)
				uploadHandler.RegisterRoutes(vendorOnly)
			}
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
