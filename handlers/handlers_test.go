package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"humanizer-backend/database"
	"humanizer-backend/middleware"
	"humanizer-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter swaps the global DB for a throwaway sqlite file and
// mirrors the route table from main.go.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Project{}))
	database.DB = db

	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.POST("/humanize", Humanize)
	r.GET("/pricing", GetPricing)

	api := r.Group("/api")
	api.Use(middleware.JwtAuthMiddleware())
	{
		api.GET("/profile", GetProfile)
		api.GET("/projects", GetProjects)
		api.POST("/projects", CreateProject)
		api.GET("/projects/:id", GetProject)
		api.PUT("/projects/:id", UpdateProject)
		api.DELETE("/projects/:id", DeleteProject)
		api.POST("/purchase", Purchase)
		api.GET("/export", ExportExcel)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
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

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser signs an account up and hands back its token.
func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/register", "", gin.H{
		"email":            email,
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := parseBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegister_GrantsFreePlan(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/register", "", gin.H{
		"email":            "fresh@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	profile := body["profile"].(map[string]interface{})
	assert.Equal(t, float64(models.FreeSignupCredits), profile["credits"])
	assert.Equal(t, models.PlanFree, profile["plan"])
}

func TestRegister_PasswordMismatch(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/register", "", gin.H{
		"email":            "fresh@example.com",
		"password":         "secret123",
		"confirm_password": "different",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "login@example.com")

	t.Run("right password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login", "", gin.H{
			"email":    "login@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/login", "", gin.H{
			"email":    "login@example.com",
			"password": "nope12345",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHumanizeEndpoint(t *testing.T) {
	r := setupRouter(t)

	t.Run("rewrites text", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/humanize", "", gin.H{
			"text": "We utilize this in order to demonstrate it.",
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		assert.Equal(t, "We use this to show it.", body["humanized_text"])
		assert.Equal(t, "We utilize this...", body["title"])
	})

	t.Run("rejects empty input", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/humanize", "", gin.H{"text": "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectEndpoints(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "projects@example.com")

	t.Run("requires a token", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var projectID string

	t.Run("create spends a credit", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
			"title":          "First project",
			"original_text":  "some original",
			"humanized_text": "some humanized",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := parseBody(t, w)["data"].(map[string]interface{})
		projectID = data["id"].(string)
		require.NotEmpty(t, projectID)

		wp := doJSON(r, http.MethodGet, "/api/profile", token, nil)
		require.Equal(t, http.StatusOK, wp.Code)
		profile := parseBody(t, wp)["profile"].(map[string]interface{})
		assert.Equal(t, float64(models.FreeSignupCredits-1), profile["credits"])
	})

	t.Run("list is newest first with meta", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/projects", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := parseBody(t, w)
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["total_data"])
	})

	t.Run("partial update", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/projects/"+projectID, token, gin.H{
			"title": "Renamed",
		})
		require.Equal(t, http.StatusOK, w.Code)
		data := parseBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "Renamed", data["title"])
		assert.Equal(t, "some original", data["originalText"])
	})

	t.Run("other users cannot touch it", func(t *testing.T) {
		other := registerUser(t, r, "other@example.com")
		w := doJSON(r, http.MethodDelete, "/api/projects/"+projectID, other, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("credit gate closes at zero", func(t *testing.T) {
		// Burn the remaining credits
		for i := 0; i < models.FreeSignupCredits-1; i++ {
			w := doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
				"original_text":  "o",
				"humanized_text": "h",
			})
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
			"original_text":  "o",
			"humanized_text": "h",
		})
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/projects/"+projectID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodDelete, "/api/projects/"+projectID, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPricingAndPurchase(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "buyer@example.com")

	t.Run("pricing is public", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/pricing", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := parseBody(t, w)["data"].([]interface{})
		assert.Len(t, data, 4)
	})

	card := gin.H{
		"plan_id":     "basic",
		"card_number": "4242424242424242",
		"card_name":   "Test Buyer",
		"expiry_date": "12/30",
		"cvv":         "123",
	}

	t.Run("purchase stacks credits", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/purchase", token, card)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		profile := parseBody(t, w)["profile"].(map[string]interface{})
		assert.Equal(t, float64(models.FreeSignupCredits+150), profile["credits"])
		assert.Equal(t, "basic", profile["plan"])
	})

	t.Run("unknown plan", func(t *testing.T) {
		bad := gin.H{}
		for k, v := range card {
			bad[k] = v
		}
		bad["plan_id"] = "platinum"
		w := doJSON(r, http.MethodPost, "/api/purchase", token, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("card fields are required", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/purchase", token, gin.H{"plan_id": "basic"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExport(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "export@example.com")

	w := doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
		"title":          "Exported",
		"original_text":  "o",
		"humanized_text": "h",
	})
	require.Equal(t, http.StatusOK, w.Code)

	we := doJSON(r, http.MethodGet, "/api/export", token, nil)
	require.Equal(t, http.StatusOK, we.Code)
	assert.Contains(t, we.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, we.Body.Len())
}
