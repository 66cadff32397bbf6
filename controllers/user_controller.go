package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"tdiapi/models"
	"tdiapi/services"
	"tdiapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService    *services.UserService
	articleService *services.ArticleService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService:    services.NewUserService(db),
		articleService: services.NewArticleService(db),
	}
}

// Index godoc
// @Summary Get list of users
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Router /user [get]
func (uc *UserController) Index(c *gin.Context) {
	users, err := uc.userService.GetAllUsers()
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch users", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", users)
}

// Store godoc
// @Summary Create new user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRequest true "user"
// @Success 201 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /user [post]
func (uc *UserController) Store(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, utils.ValidationMessages(err))
		return
	}

	user, err := uc.userService.CreateUser(&req)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to create user", nil)
		return
	}

	utils.Respond(c, http.StatusCreated, "Operation Successful", user)
}

// Show godoc
// @Summary Shows specific user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path integer true "User id"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /user/{id} [get]
func (uc *UserController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := uc.userService.GetUserByID(uint(id))
	if err != nil {
		respondUserFetchError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", user)
}

// Update godoc
// @Summary Updates a user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path integer true "User id"
// @Param user body models.UserRequest true "user"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /user/{id} [put]
func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req models.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, utils.ValidationMessages(err))
		return
	}

	user, err := uc.userService.UpdateUser(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, http.StatusNotFound, "User not found", nil)
			return
		}
		utils.Respond(c, http.StatusInternalServerError, "Failed to update user", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", user)
}

// Destroy godoc
// @Summary Deletes a specific user
// @Tags User
// @Produce plain
// @Security BearerAuth
// @Param id path integer true "User id"
// @Success 200 {string} string "User deleted"
// @Failure 404 {object} utils.Envelope
// @Router /user/{id} [delete]
func (uc *UserController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if _, err := uc.userService.GetUserByID(uint(id)); err != nil {
		respondUserFetchError(c, err)
		return
	}

	if err := uc.userService.DeleteUser(uint(id)); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to delete user", nil)
		return
	}

	utils.RespondText(c, http.StatusOK, "User deleted")
}

// respondUserFetchError keeps a missing row distinct from a failing store:
// only gorm.ErrRecordNotFound maps to 404.
func respondUserFetchError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Respond(c, http.StatusNotFound, "User not found", nil)
		return
	}
	utils.Respond(c, http.StatusInternalServerError, "Failed to fetch user", nil)
}

// GetArticles godoc
// @Summary Shows articles from a user
// @Tags Article,User
// @Produce json
// @Security BearerAuth
// @Param id path integer true "User id"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /user/{id}/articles [get]
func (uc *UserController) GetArticles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if _, err := uc.userService.GetUserByID(uint(id)); err != nil {
		respondUserFetchError(c, err)
		return
	}

	articles, err := uc.articleService.GetArticlesByUser(uint(id))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch articles", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", articles)
}
