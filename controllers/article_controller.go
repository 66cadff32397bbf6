package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tdiapi/models"
	"tdiapi/services"
	"tdiapi/storage"
	"tdiapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Stored article images live under this bucket in the content store.
const imageBucket = "articleImages"

type ArticleController struct {
	articleService *services.ArticleService
	userService    *services.UserService
	store          *storage.Store
}

func NewArticleController(db *gorm.DB, store *storage.Store) *ArticleController {
	return &ArticleController{
		articleService: services.NewArticleService(db),
		userService:    services.NewUserService(db),
		store:          store,
	}
}

// Index godoc
// @Summary Get list of articles
// @Tags Article
// @Produce json
// @Success 200 {object} utils.Envelope
// @Router /article [get]
func (ac *ArticleController) Index(c *gin.Context) {
	articles, err := ac.articleService.GetAllArticles()
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch articles", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", articles)
}

// Store godoc
// @Summary Create new article
// @Tags Article
// @Accept mpfd
// @Produce json
// @Param title formData string true "article title"
// @Param description formData string true "article description"
// @Param image formData file true "article image"
// @Param user_id formData integer true "article author"
// @Success 201 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /article [post]
func (ac *ArticleController) Store(c *gin.Context) {
	var req models.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, utils.ValidationMessages(err))
		return
	}

	if errs := ac.validate(&req); len(errs) > 0 {
		utils.RespondValidationError(c, errs)
		return
	}

	path, err := ac.store.Save(req.Image, imageBucket)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to store image", nil)
		return
	}

	article, err := ac.articleService.CreateArticle(&req, path)
	if err != nil {
		// a failed insert must not leave an orphaned file behind
		if removeErr := ac.store.Remove(path); removeErr != nil {
			log.Printf("Failed to remove stored image %s: %v", path, removeErr)
		}
		utils.Respond(c, http.StatusInternalServerError, "Failed to create article", nil)
		return
	}

	utils.Respond(c, http.StatusCreated, "New article created", article)
}

// Show godoc
// @Summary Shows specific article
// @Tags Article
// @Produce json
// @Param id path integer true "Article id"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /article/{id} [get]
func (ac *ArticleController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	article, err := ac.articleService.GetArticleByID(uint(id))
	if err != nil {
		respondArticleFetchError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", article)
}

// Update godoc
// @Summary Updates an article
// @Tags Article
// @Accept mpfd
// @Produce json
// @Param id path integer true "Article id"
// @Param title formData string true "article title"
// @Param description formData string true "article description"
// @Param image formData file true "article image"
// @Param user_id formData integer true "article author"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 422 {object} utils.Envelope
// @Router /article/{id} [put]
func (ac *ArticleController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	article, err := ac.articleService.GetArticleByID(uint(id))
	if err != nil {
		respondArticleFetchError(c, err)
		return
	}

	var req models.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, utils.ValidationMessages(err))
		return
	}

	if errs := ac.validate(&req); len(errs) > 0 {
		utils.RespondValidationError(c, errs)
		return
	}

	// the image is re-stored on every update, even if unchanged
	path, err := ac.store.Save(req.Image, imageBucket)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to store image", nil)
		return
	}

	if err := ac.articleService.UpdateArticle(article, &req, path); err != nil {
		if removeErr := ac.store.Remove(path); removeErr != nil {
			log.Printf("Failed to remove stored image %s: %v", path, removeErr)
		}
		utils.Respond(c, http.StatusInternalServerError, "Failed to update article", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Operation Successful", article)
}

// Destroy godoc
// @Summary Deletes a specific article
// @Tags Article
// @Produce plain
// @Param id path integer true "Article id"
// @Success 200 {string} string "Article deleted"
// @Failure 404 {object} utils.Envelope
// @Router /article/{id} [delete]
func (ac *ArticleController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	if _, err := ac.articleService.GetArticleByID(uint(id)); err != nil {
		respondArticleFetchError(c, err)
		return
	}

	if err := ac.articleService.DeleteArticle(uint(id)); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to delete article", nil)
		return
	}

	utils.RespondText(c, http.StatusOK, "Article deleted")
}

// respondArticleFetchError keeps a missing row distinct from a failing
// store: only gorm.ErrRecordNotFound maps to 404.
func respondArticleFetchError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Respond(c, http.StatusNotFound, "Article not found", nil)
		return
	}
	utils.Respond(c, http.StatusInternalServerError, "Failed to fetch article", nil)
}

// validate covers the rules gin's binding can't express: user_id must
// reference an existing user and the upload must actually be an image.
func (ac *ArticleController) validate(req *models.ArticleRequest) map[string][]string {
	errs := make(map[string][]string)

	exists, err := ac.userService.UserExists(req.UserID)
	if err != nil || !exists {
		errs["user_id"] = append(errs["user_id"], "The selected user_id is invalid.")
	}

	if !storage.IsImage(req.Image) {
		errs["image"] = append(errs["image"], "The image must be an image.")
	}

	return errs
}
