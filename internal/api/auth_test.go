package api

import (
	"easyshop/internal/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	gdb, r := setupTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/register", "", RegisterRequest{Username: "Alice", Password: "password123"})
	assertStatus(t, w, http.StatusCreated)

	// Registration creates the user lowercase along with a blank profile
	var user domain.User
	require.NoError(t, gdb.First(&user, "username = ?", "alice").Error)
	var profile domain.Profile
	require.NoError(t, gdb.First(&profile, "user_id = ?", user.ID).Error)

	// The issued token works on a protected route
	token := loginToken(t, r, "alice", "password123")
	w = doRequest(t, r, http.MethodGet, "/profile", token, nil)
	assertStatus(t, w, http.StatusOK)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	_, r := setupTestAPI(t)

	body := RegisterRequest{Username: "alice", Password: "password123"}
	w := doRequest(t, r, http.MethodPost, "/register", "", body)
	assertStatus(t, w, http.StatusCreated)

	w = doRequest(t, r, http.MethodPost, "/register", "", body)
	assertStatus(t, w, http.StatusBadRequest)
}

func TestRegister_RejectsBadInput(t *testing.T) {
	_, r := setupTestAPI(t)

	cases := []RegisterRequest{
		{Username: "bad name!", Password: "password123"}, // Non-alphanumeric username
		{Username: "alice", Password: "short"},           // Password too short
		{Username: "", Password: "password123"},          // Missing username
	}
	for _, body := range cases {
		w := doRequest(t, r, http.MethodPost, "/register", "", body)
		assertStatus(t, w, http.StatusBadRequest)
	}
}

func TestRegister_StorageFailureIsOpaque500(t *testing.T) {
	gdb, r := setupTestAPI(t)

	// Kill the database out from under the handler
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doRequest(t, r, http.MethodPost, "/register", "", RegisterRequest{Username: "alice", Password: "password123"})
	assertStatus(t, w, http.StatusInternalServerError)
	assert.NotContains(t, w.Body.String(), "already exists", "a storage outage must not masquerade as a duplicate username")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	gdb, r := setupTestAPI(t)
	createUser(t, gdb, "alice", "password123", "user")

	w := doRequest(t, r, http.MethodPost, "/login", "", LoginRequest{Username: "alice", Password: "wrongpass"})
	assertStatus(t, w, http.StatusUnauthorized)

	w = doRequest(t, r, http.MethodPost, "/login", "", LoginRequest{Username: "nobody", Password: "password123"})
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedRoute_RejectsBadToken(t *testing.T) {
	_, r := setupTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/cart", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
