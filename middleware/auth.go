package middleware

import (
	"net/http"
	"strings"

	"tdiapi/models"
	"tdiapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRequired gates a route on a valid bearer token and resolves it to a
// user before any handler logic runs.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			abortUnauthenticated(c)
			return
		}

		userID, err := utils.ValidateJWT(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set("user_id", userID)
		c.Set("user", &user)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	utils.Respond(c, http.StatusUnauthorized, "Unauthenticated.", nil)
	c.Abort()
}
