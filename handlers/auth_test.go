package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J3FF-omg/SaveFood/checkout"
	"github.com/J3FF-omg/SaveFood/handlers"
	"github.com/J3FF-omg/SaveFood/routes"
	"github.com/J3FF-omg/SaveFood/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Seed(db))

	catalog := store.NewCatalog(db)
	ledger := store.NewLedger(db)
	h := &handlers.Handler{
		Identity:  store.NewIdentity(db),
		Catalog:   catalog,
		Ledger:    ledger,
		Checkout:  checkout.New(catalog, ledger),
		JWTSecret: []byte("test-secret"),
	}

	r := gin.New()
	routes.SetupRoutes(r, h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "buyer2",
		"password": "secret99",
		"email":    "buyer2@example.com",
		"role":     "buyer",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate username conflicts, regardless of the other fields.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "buyer2",
		"password": "different",
		"email":    "other@example.com",
		"role":     "seller",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	token := login(t, r, "buyer2", "secret99")
	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buyer2")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "buyer1",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterCannotClaimAdmin(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "sneaky",
		"password": "secret99",
		"email":    "sneaky@example.com",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/buyer/orders", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGate(t *testing.T) {
	r := newTestServer(t)

	// A buyer cannot reach seller or admin surfaces.
	token := login(t, r, "buyer1", "buyer123")
	w := doJSON(t, r, http.MethodGet, "/api/seller/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
