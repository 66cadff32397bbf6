package routes

import (
	"net/http"

	"tdiapi/controllers"
	"tdiapi/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, articleController *controllers.ArticleController, userController *controllers.UserController, authController *controllers.AuthController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/login", authController.Login)
	r.GET("/auth", middleware.AuthRequired(db), authController.Me)

	articles := r.Group("/article")
	{
		articles.GET("", articleController.Index)
		articles.POST("", articleController.Store)
		articles.GET("/:id", articleController.Show)
		articles.PUT("/:id", articleController.Update)
		articles.DELETE("/:id", articleController.Destroy)
	}

	users := r.Group("/user")
	users.Use(middleware.AuthRequired(db))
	{
		users.GET("", userController.Index)
		users.POST("", userController.Store)
		users.GET("/:id", userController.Show)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Destroy)

		users.GET("/:id/articles", userController.GetArticles)
	}
}
