package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/udyambridge/business-platform-go/config"
	guard "github.com/udyambridge/business-platform-go/guard"
	middleware "github.com/udyambridge/business-platform-go/middleware"
	models "github.com/udyambridge/business-platform-go/models"
	session "github.com/udyambridge/business-platform-go/session"
	store "github.com/udyambridge/business-platform-go/store"
	utils "github.com/udyambridge/business-platform-go/utils"
)

var testCfg = &config.Config{
	JWTSecret:    []byte("test-secret"),
	FallbackPath: "/business",
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleDefersBeforeRestore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(store.NewMemStore())
	g := guard.Guard{Fallback: "/business"}

	// Restore deliberately not called: the guard must defer, not redirect.
	r := gin.New()
	r.Use(middleware.ResolveSession(testCfg, mgr))
	r.GET("/protected", middleware.RequireRole(g, models.RoleInvestor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := get(r, "/protected", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestResolveSessionRejectsStaleToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(store.NewMemStore())
	require.NoError(t, mgr.Restore())

	token, err := utils.IssueToken(testCfg.JWTSecret, "asha", models.RoleInvestor)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ResolveSession(testCfg, mgr))
	r.GET("/any", func(c *gin.Context) { c.Status(http.StatusOK) })

	// No active session: a presented token cannot match it.
	w := get(r, "/any", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage tokens are rejected outright.
	w = get(r, "/any", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveSessionAcceptsMatchingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(store.NewMemStore())
	require.NoError(t, mgr.Restore())
	_, err := mgr.Login(models.Investor{Username: "asha", Password: "secret1"}, models.RoleInvestor)
	require.NoError(t, err)

	token, err := utils.IssueToken(testCfg.JWTSecret, "asha", models.RoleInvestor)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ResolveSession(testCfg, mgr))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})

	w := get(r, "/whoami", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"asha","role":"investor"}`, w.Body.String())

	// A token minted for another login is refused even though it verifies.
	other, err := utils.IssueToken(testCfg.JWTSecret, "someone-else", models.RoleInvestor)
	require.NoError(t, err)
	w = get(r, "/whoami", other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAdmitsAndRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(store.NewMemStore())
	require.NoError(t, mgr.Restore())
	g := guard.Guard{Fallback: "/business"}

	r := gin.New()
	r.Use(middleware.ResolveSession(testCfg, mgr))
	r.GET("/investor-area", middleware.RequireRole(g, models.RoleInvestor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := get(r, "/investor-area", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/business", w.Header().Get("Location"))

	_, err := mgr.Login(models.Investor{Username: "asha"}, models.RoleInvestor)
	require.NoError(t, err)
	w = get(r, "/investor-area", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
