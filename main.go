package main

import (
	"log"

	"tdiapi/config"
	"tdiapi/controllers"
	"tdiapi/database"
	"tdiapi/middleware"
	"tdiapi/routes"
	"tdiapi/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tdiapi/docs"
)

// @title TDI API
// @version 1.0
// @description REST API for articles and users

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)
	if cfg.SeedDB {
		database.Seed(db)
	}

	store := storage.New(cfg.StoragePath)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.Logger())

	articleController := controllers.NewArticleController(db, store)
	userController := controllers.NewUserController(db)
	authController := controllers.NewAuthController(db)

	routes.SetupRoutes(r, db, articleController, userController, authController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
