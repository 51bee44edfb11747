package controllers_test

import (
	"net/http"
	"testing"

	"poolcare-backend/config"
	"poolcare-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestCustomersRequireAuth(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	r, token := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/customers/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveDownSwapsSortOrders(t *testing.T) {
	r, token := setupServer(t)

	a := createCustomer(t, r, token, "Customer A", "Monday", intp(0))
	b := createCustomer(t, r, token, "Customer B", "Monday", intp(1))

	w := doJSON(t, r, http.MethodPost, "/api/customers/"+a.ID+"/move-down", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		Moved bool `json:"moved"`
	}
	decodeJSON(t, w, &result)
	assert.True(t, result.Moved)

	w = doJSON(t, r, http.MethodGet, "/api/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []customerJSON
	decodeJSON(t, w, &listed)
	require.Len(t, listed, 2)

	// The day-group listing now yields [B, A] with swapped orders
	assert.Equal(t, b.ID, listed[0].ID)
	assert.Equal(t, 0, *listed[0].SortOrder)
	assert.Equal(t, a.ID, listed[1].ID)
	assert.Equal(t, 1, *listed[1].SortOrder)
}

func TestMoveUpOnFirstIsNoOp(t *testing.T) {
	r, token := setupServer(t)

	a := createCustomer(t, r, token, "Customer A", "Monday", intp(0))
	createCustomer(t, r, token, "Customer B", "Monday", intp(1))

	w := doJSON(t, r, http.MethodPost, "/api/customers/"+a.ID+"/move-up", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Moved bool `json:"moved"`
	}
	decodeJSON(t, w, &result)
	assert.False(t, result.Moved)

	var stored models.Customer
	require.NoError(t, config.DB.First(&stored, "id = ?", a.ID).Error)
	require.NotNil(t, stored.SortOrder)
	assert.Equal(t, 0, *stored.SortOrder, "no writes on a boundary move")
}

func TestMoveRoundTripRestoresListing(t *testing.T) {
	r, token := setupServer(t)

	a := createCustomer(t, r, token, "Customer A", "Tuesday", intp(0))
	b := createCustomer(t, r, token, "Customer B", "Tuesday", intp(1))

	w := doJSON(t, r, http.MethodPost, "/api/customers/"+b.ID+"/move-up", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/customers/"+b.ID+"/move-down", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customers", token, nil)
	var listed []customerJSON
	decodeJSON(t, w, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, a.ID, listed[0].ID)
	assert.Equal(t, b.ID, listed[1].ID)
}

func TestNormalizeOrderBackfillsAndIsIdempotent(t *testing.T) {
	r, token := setupServer(t)

	createCustomer(t, r, token, "First", "Monday", nil)
	createCustomer(t, r, token, "Second", "Monday", nil)
	createCustomer(t, r, token, "Third", "Friday", nil)

	w := doJSON(t, r, http.MethodPost, "/api/customers/normalize-order", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Assigned int `json:"assigned"`
	}
	decodeJSON(t, w, &result)
	assert.Equal(t, 3, result.Assigned)

	w = doJSON(t, r, http.MethodGet, "/api/customers?service_day=Monday", token, nil)
	var monday []customerJSON
	decodeJSON(t, w, &monday)
	require.Len(t, monday, 2)
	assert.Equal(t, 0, *monday[0].SortOrder)
	assert.Equal(t, 1, *monday[1].SortOrder)

	// Second pass touches nothing
	w = doJSON(t, r, http.MethodPost, "/api/customers/normalize-order", token, nil)
	decodeJSON(t, w, &result)
	assert.Equal(t, 0, result.Assigned)
}

func TestDeleteCustomerDoesNotCascade(t *testing.T) {
	r, token := setupServer(t)

	c := createCustomer(t, r, token, "Leaving", "Monday", intp(0))
	customerID := uuid.MustParse(c.ID)

	log := models.ServiceLog{
		CustomerID:  customerID,
		ServiceDate: "2024-07-15",
		Status:      "completed",
		Ph:          "good",
		Chlorine:    "good",
		Alkalinity:  "good",
		Stabilizer:  "good",
	}
	require.NoError(t, config.DB.Create(&log).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/"+c.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The log survives with a dangling customer reference
	var remaining int64
	require.NoError(t, config.DB.Model(&models.ServiceLog{}).
		Where("customer_id = ?", customerID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestUpdateCustomerPatchesOnlyProvidedFields(t *testing.T) {
	r, token := setupServer(t)

	c := createCustomer(t, r, token, "Before", "Monday", intp(0))

	w := doJSON(t, r, http.MethodPut, "/api/customers/"+c.ID, token, map[string]any{
		"full_name": "After",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Customer
	require.NoError(t, config.DB.First(&stored, "id = ?", c.ID).Error)
	assert.Equal(t, "After", stored.FullName)
	assert.Equal(t, "Monday", stored.ServiceDay)
	assert.Equal(t, "1 Pool Lane", stored.Address)
	require.NotNil(t, stored.SortOrder)
	assert.Equal(t, 0, *stored.SortOrder)
}
