package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"tdiapi/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateArticle(t *testing.T) {
	r, db, storeDir := setupTestRouter(t)
	user := createTestUser(t, db, "Josué", "josueaosilverio@ua.pt", "testes")

	body, contentType := articleForm(t, "First article", "A description", strconv.Itoa(int(user.ID)), pngBytes)
	w := doRequest(r, "POST", "/article", body, contentType, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "201", env.Status)
	assert.Equal(t, "New article created", env.Message)

	var article models.Article
	assert.NoError(t, json.Unmarshal(env.Data, &article))
	assert.Equal(t, "First article", article.Title)
	assert.Equal(t, "A description", article.Description)
	assert.Equal(t, user.ID, article.UserID)

	// the image field references the stored file, not the upload name
	assert.NotEmpty(t, article.Image)
	assert.NotEqual(t, "upload.png", article.Image)
	_, err := os.Stat(filepath.Join(storeDir, article.Image))
	assert.NoError(t, err)
}

func TestCreateArticleValidation(t *testing.T) {
	r, db, _ := setupTestRouter(t)
	user := createTestUser(t, db, "Josué", "josueaosilverio@ua.pt", "testes")

	t.Run("missing fields", func(t *testing.T) {
		body, contentType := articleForm(t, "", "", "", nil)
		w := doRequest(r, "POST", "/article", body, contentType, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		env := decodeEnvelope(t, w)
		assert.Equal(t, "422", env.Status)
		assert.Equal(t, "The given data was invalid.", env.Message)

		var errs map[string][]string
		assert.NoError(t, json.Unmarshal(env.Data, &errs))
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "description")
		assert.Contains(t, errs, "user_id")
		assert.Contains(t, errs, "image")
	})

	t.Run("unknown user_id", func(t *testing.T) {
		body, contentType := articleForm(t, "Title", "Description", "9999", pngBytes)
		w := doRequest(r, "POST", "/article", body, contentType, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var errs map[string][]string
		json.Unmarshal(decodeEnvelope(t, w).Data, &errs)
		assert.Contains(t, errs, "user_id")
	})

	t.Run("upload is not an image", func(t *testing.T) {
		body, contentType := articleForm(t, "Title", "Description", strconv.Itoa(int(user.ID)), []byte("plain text, not an image"))
		w := doRequest(r, "POST", "/article", body, contentType, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var errs map[string][]string
		json.Unmarshal(decodeEnvelope(t, w).Data, &errs)
		assert.Contains(t, errs, "image")
	})

	t.Run("no row written on failure", func(t *testing.T) {
		var count int64
		db.Model(&models.Article{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestArticleRoundTrip(t *testing.T) {
	r, db, _ := setupTestRouter(t)
	user := createTestUser(t, db, "Josué", "josueaosilverio@ua.pt", "testes")
	other := createTestUser(t, db, "Maria", "maria@ua.pt", "segredo")

	body, contentType := articleForm(t, "Original title", "Original description", strconv.Itoa(int(user.ID)), pngBytes)
	w := doRequest(r, "POST", "/article", body, contentType, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Article
	json.Unmarshal(decodeEnvelope(t, w).Data, &created)

	path := fmt.Sprintf("/article/%d", created.ID)

	w = doRequest(r, "GET", path, nil, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched models.Article
	json.Unmarshal(decodeEnvelope(t, w).Data, &fetched)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Image, fetched.Image)
	assert.NotNil(t, fetched.Author)
	assert.Equal(t, user.ID, fetched.Author.ID)

	// full replace: every field takes the new value, including the owner
	body, contentType = articleForm(t, "New title", "New description", strconv.Itoa(int(other.ID)), pngBytes)
	w = doRequest(r, "PUT", path, body, contentType, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "GET", path, nil, "", "")
	var updated models.Article
	json.Unmarshal(decodeEnvelope(t, w).Data, &updated)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, other.ID, updated.UserID)
	assert.NotNil(t, updated.Author)
	assert.Equal(t, other.ID, updated.Author.ID)
	assert.NotEqual(t, created.Image, updated.Image)
}

func TestShowArticleNotFound(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	w := doRequest(r, "GET", "/article/42", nil, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404", decodeEnvelope(t, w).Status)
}

func TestFetchFailureIsNotNotFound(t *testing.T) {
	r, db, _ := setupTestRouter(t)
	admin := createTestUser(t, db, "Admin", "admin@ua.pt", "admin")
	token := authToken(t, admin.ID)

	// break the article table so reads fail with a real storage error
	assert.NoError(t, db.Migrator().DropTable(&models.Article{}))

	w := doRequest(r, "GET", "/article/1", nil, "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "500", decodeEnvelope(t, w).Status)

	w = doRequest(r, "GET", fmt.Sprintf("/user/%d/articles", admin.ID), nil, "", token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "500", decodeEnvelope(t, w).Status)
}

func TestCreateArticleRemovesImageWhenInsertFails(t *testing.T) {
	r, db, storeDir := setupTestRouter(t)
	user := createTestUser(t, db, "Josué", "josueaosilverio@ua.pt", "testes")

	// validation passes, the upload is stored, then the insert fails
	assert.NoError(t, db.Migrator().DropTable(&models.Article{}))

	body, contentType := articleForm(t, "Title", "Description", strconv.Itoa(int(user.ID)), pngBytes)
	w := doRequest(r, "POST", "/article", body, contentType, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries, err := os.ReadDir(filepath.Join(storeDir, "articleImages"))
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteArticle(t *testing.T) {
	r, db, _ := setupTestRouter(t)
	user := createTestUser(t, db, "Josué", "josueaosilverio@ua.pt", "testes")

	for _, title := range []string{"Keep me", "Delete me"} {
		body, contentType := articleForm(t, title, "Description", strconv.Itoa(int(user.ID)), pngBytes)
		w := doRequest(r, "POST", "/article", body, contentType, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var target models.Article
	db.Where("title = ?", "Delete me").First(&target)

	w := doRequest(r, "DELETE", fmt.Sprintf("/article/%d", target.ID), nil, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Article deleted", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	// gone from the default listing
	w = doRequest(r, "GET", "/article", nil, "", "")
	var articles []models.Article
	json.Unmarshal(decodeEnvelope(t, w).Data, &articles)
	assert.Len(t, articles, 1)
	assert.Equal(t, "Keep me", articles[0].Title)

	// but the row survives for soft-delete-aware queries
	var deleted models.Article
	err := db.Unscoped().First(&deleted, target.ID).Error
	assert.NoError(t, err)
	assert.True(t, deleted.DeletedAt.Valid)

	err = db.First(&models.Article{}, target.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
