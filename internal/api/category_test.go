package api

import (
	"easyshop/internal/domain"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories_EmptyIsNotNull(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/categories", "", nil)
	assertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, "[]", w.Body.String(), "empty listing must be [], never null")
}

func TestGetCategory_NotFound(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/categories/42", "", nil)
	assertStatus(t, w, http.StatusNotFound)
}

func TestGetCategory(t *testing.T) {
	gdb, r := setupTestAPI(t)
	category := createCategory(t, gdb, "Electronics")

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/categories/%d", category.ID), "", nil)
	assertStatus(t, w, http.StatusOK)

	var got domain.Category
	decodeBody(t, w, &got)
	assert.Equal(t, category.ID, got.ID)
	assert.Equal(t, "Electronics", got.Name)
}

func TestGetCategoryProducts(t *testing.T) {
	gdb, r := setupTestAPI(t)
	electronics := createCategory(t, gdb, "Electronics")
	furniture := createCategory(t, gdb, "Furniture")
	createProduct(t, gdb, "Smartphone", 599.99, electronics.ID)
	createProduct(t, gdb, "Laptop", 1299.00, electronics.ID)
	createProduct(t, gdb, "Desk", 250.00, furniture.ID)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/categories/%d/products", electronics.ID), "", nil)
	assertStatus(t, w, http.StatusOK)

	var products []domain.Product
	decodeBody(t, w, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, electronics.ID, p.CategoryID)
	}
}

func TestGetCategoryProducts_UnknownCategory(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/categories/42/products", "", nil)
	assertStatus(t, w, http.StatusNotFound)
}

func TestCategoryWrites_RequireAdmin(t *testing.T) {
	gdb, r := setupTestAPI(t)
	_, userToken := createUser(t, gdb, "alice", "password123", "user")

	body := CategoryRequest{Name: "Electronics"}

	// Unauthenticated
	w := doRequest(t, r, http.MethodPost, "/categories", "", body)
	assertStatus(t, w, http.StatusUnauthorized)

	// Authenticated but not admin
	w = doRequest(t, r, http.MethodPost, "/categories", userToken, body)
	assertStatus(t, w, http.StatusForbidden)
}

func TestCategoryCRUD_AsAdmin(t *testing.T) {
	gdb, r := setupTestAPI(t)
	_, adminToken := createUser(t, gdb, "admin", "password123", "admin")

	// Create
	w := doRequest(t, r, http.MethodPost, "/categories", adminToken, CategoryRequest{Name: "Electronics", Description: "Gadgets"})
	assertStatus(t, w, http.StatusCreated)
	var created domain.Category
	decodeBody(t, w, &created)
	require.NotZero(t, created.ID)

	// Update
	path := fmt.Sprintf("/categories/%d", created.ID)
	w = doRequest(t, r, http.MethodPut, path, adminToken, CategoryRequest{Name: "Gadgets", Description: "Renamed"})
	assertStatus(t, w, http.StatusOK)
	var updated domain.Category
	decodeBody(t, w, &updated)
	assert.Equal(t, "Gadgets", updated.Name)

	// Delete
	w = doRequest(t, r, http.MethodDelete, path, adminToken, nil)
	assertStatus(t, w, http.StatusNoContent)

	// Gone afterwards
	w = doRequest(t, r, http.MethodGet, path, "", nil)
	assertStatus(t, w, http.StatusNotFound)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	gdb, r := setupTestAPI(t)
	_, adminToken := createUser(t, gdb, "admin", "password123", "admin")

	w := doRequest(t, r, http.MethodPut, "/categories/42", adminToken, CategoryRequest{Name: "Nope"})
	assertStatus(t, w, http.StatusNotFound)

	w = doRequest(t, r, http.MethodDelete, "/categories/42", adminToken, nil)
	assertStatus(t, w, http.StatusNotFound)
}
