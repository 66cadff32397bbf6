package controllers

import (
	"net/http"

	"tdiapi/models"
	"tdiapi/services"
	"tdiapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	userService *services.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		userService: services.NewUserService(db),
	}
}

// Login godoc
// @Summary Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "credentials"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, utils.ValidationMessages(err))
		return
	}

	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		utils.Respond(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary Returns the user resolved for the current token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Router /auth [get]
func (ac *AuthController) Me(c *gin.Context) {
	// the auth middleware resolved the principal already
	user, _ := c.Get("user")
	utils.Respond(c, http.StatusOK, "Operation Successful", user)
}
