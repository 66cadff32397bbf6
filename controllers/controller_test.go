package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tdiapi/controllers"
	"tdiapi/models"
	"tdiapi/routes"
	"tdiapi/storage"
	"tdiapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Smallest payload the content sniffer accepts as image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.Article{})

	storeDir := t.TempDir()
	store := storage.New(storeDir)

	r := gin.New()
	routes.SetupRoutes(r, db,
		controllers.NewArticleController(db, store),
		controllers.NewUserController(db),
		controllers.NewAuthController(db))
	return r, db, storeDir
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: password}
	if err := user.HashPassword(); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func articleForm(t *testing.T, title, description, userID string, image []byte) (io.Reader, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	w.WriteField("title", title)
	w.WriteField("description", description)
	w.WriteField("user_id", userID)
	if image != nil {
		fw, err := w.CreateFormFile("image", "upload.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write(image)
	}
	w.Close()
	return body, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(payload)
	return doRequest(r, method, path, bytes.NewBuffer(jsonBody), "application/json", token)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}
