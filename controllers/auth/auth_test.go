package authControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.POST("/auth/register", RegisterHandler(db))
	r.POST("/auth/login", LoginHandler(db, testSecret))
	r.POST("/auth/forgot-password", ForgotPasswordHandler(db))
	return r, db
}

func doJSON(r *gin.Engine, method, path string, body map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var registration = map[string]string{
	"name":     "Test User",
	"email":    "user@test.dev",
	"password": "secret123",
	"phone":    "1234567890",
	"address":  "1 Test Street",
	"answer":   "blue",
}

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registration)
	require.Equal(t, http.StatusCreated, w.Code)

	// password is stored hashed
	var user models.User
	require.NoError(t, db.Where("email = ?", registration["email"]).First(&user).Error)
	assert.NotEqual(t, registration["password"], user.Password)

	w = doJSON(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    registration["email"],
		"password": registration["password"],
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registration)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/register", registration)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", map[string]string{"email": "user@test.dev"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registration)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    registration["email"],
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@test.dev",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForgotPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registration)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email":       registration["email"],
		"answer":      "wrong",
		"newPassword": "newsecret",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email":       registration["email"],
		"answer":      registration["answer"],
		"newPassword": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    registration["email"],
		"password": "newsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
