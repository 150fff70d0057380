package api

import (
	"bytes"
	"easyshop/internal/db"
	"easyshop/internal/domain"
	"easyshop/internal/utils"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// setupTestAPI opens a fresh in-memory database, migrates the full schema and
// wires the real router over it, with caching and rate limiting disabled.
func setupTestAPI(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// One named shared-memory database per test keeps tests independent
	// while letting the pool open more than one connection
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	// TranslateError matches production, where duplicate-key failures must
	// surface as gorm.ErrDuplicatedKey
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(db.Models()...))
	return gdb, NewRouter(gdb, nil, testJWTSecret)
}

// createUser inserts a user with a hashed password, a blank profile and a
// valid token for it
func createUser(t *testing.T, gdb *gorm.DB, username, password, role string) (domain.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{Username: username, Password: string(hash), Role: role}
	require.NoError(t, gdb.Create(&user).Error)
	require.NoError(t, gdb.Create(&domain.Profile{UserID: user.ID}).Error)
	token, err := utils.GenerateJWT(user.ID, testJWTSecret)
	require.NoError(t, err)
	return user, token
}

// createProduct inserts a catalog product (and its category if needed)
func createProduct(t *testing.T, gdb *gorm.DB, name string, price float64, categoryID uint) domain.Product {
	t.Helper()
	product := domain.Product{Name: name, Price: price, CategoryID: categoryID, Stock: 10}
	require.NoError(t, gdb.Create(&product).Error)
	return product
}

// createCategory inserts a category
func createCategory(t *testing.T, gdb *gorm.DB, name string) domain.Category {
	t.Helper()
	category := domain.Category{Name: name, Description: name + " stuff"}
	require.NoError(t, gdb.Create(&category).Error)
	return category
}

// loginToken logs in through the API and returns the issued token
func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/login", "", LoginRequest{Username: username, Password: password})
	assertStatus(t, w, http.StatusOK)
	var resp AuthResponse
	decodeBody(t, w, &resp)
	return resp.Token
}

// doRequest performs one request against the router and returns the recorder
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into dest
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// assertStatus fails with the response body when the status is unexpected
func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
