package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/routes"
	"poolcare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testEmail = "tech@example.com"

// setupServer wires the router against a fresh in-memory database and
// returns a bearer token for the seeded technician account.
func setupServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	// Shared cache keeps the in-memory database alive across pooled
	// connections; the test name keeps databases apart.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.ServiceLog{},
		&models.ChemicalUsage{},
		&models.Note{},
		&models.DigestLog{},
	))
	config.DB = db

	user := models.User{
		Email:    testEmail,
		Password: "password123",
		Name:     "Test Tech",
		Phone:    "+15551234567",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID.String(), user.Email)
	require.NoError(t, err)

	return routes.SetupRouter(), token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
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

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func createCustomer(t *testing.T, r *gin.Engine, token, name, day string, sortOrder *int) customerJSON {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/customers", token, gin.H{
		"full_name":    name,
		"address":      "1 Pool Lane",
		"service_day":  day,
		"pool_type":    "Chlorine",
		"surface_type": "Plaster",
		"sort_order":   sortOrder,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created customerJSON
	decodeJSON(t, w, &created)
	return created
}

// customerJSON mirrors the wire shape of models.Customer
type customerJSON struct {
	ID         string `json:"ID"`
	FullName   string `json:"FullName"`
	ServiceDay string `json:"ServiceDay"`
	SortOrder  *int   `json:"SortOrder"`
}
