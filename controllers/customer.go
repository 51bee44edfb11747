package controllers

import (
	"errors"
	"net/http"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/schedule"
	"poolcare-backend/utils"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	FullName    string   `json:"full_name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	GateCode    string   `json:"gate_code"`
	ServiceDay  string   `json:"service_day" binding:"required"`
	PoolGallons *float64 `json:"pool_gallons"`
	PoolType    string   `json:"pool_type" binding:"required"`
	SurfaceType string   `json:"surface_type" binding:"required"`
	SortOrder   *int     `json:"sort_order"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	FullName    *string  `json:"full_name"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	GateCode    *string  `json:"gate_code"`
	ServiceDay  *string  `json:"service_day"`
	PoolGallons *float64 `json:"pool_gallons"`
	PoolType    *string  `json:"pool_type"`
	SurfaceType *string  `json:"surface_type"`
	SortOrder   *int     `json:"sort_order"`
}

// CreateCustomer creates a new customer owned by the caller
func CreateCustomer(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		ID:          uuid.New(),
		CreatedBy:   identity.(string),
		FullName:    input.FullName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		GateCode:    input.GateCode,
		ServiceDay:  input.ServiceDay,
		PoolGallons: input.PoolGallons,
		PoolType:    input.PoolType,
		SurfaceType: input.SurfaceType,
		SortOrder:   input.SortOrder,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers. The owner filter defaults to the caller;
// an explicit created_by or service_day query parameter narrows further.
// Results come back grouped by service day, then by sort order.
func GetCustomers(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	createdBy := c.Query("created_by")
	if createdBy == "" {
		createdBy = identity.(string)
	}

	query := config.DB.Where("created_by = ?", createdBy)
	if day := c.Query("service_day"); day != "" {
		query = query.Where("service_day = ?", day)
	}

	var customers []models.Customer
	if err := query.Order("created_at ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	sort.SliceStable(customers, func(i, j int) bool {
		if customers[i].ServiceDay != customers[j].ServiceDay {
			return customers[i].ServiceDay < customers[j].ServiceDay
		}
		a, b := customers[i].SortOrder, customers[j].SortOrder
		av, bv := 0, 0
		if a != nil {
			av = *a
		}
		if b != nil {
			bv = *b
		}
		return av < bv
	})

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer patches the provided fields of an existing customer
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FullName != nil {
		customer.FullName = *input.FullName
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.GateCode != nil {
		customer.GateCode = *input.GateCode
	}
	if input.ServiceDay != nil {
		customer.ServiceDay = *input.ServiceDay
	}
	if input.PoolGallons != nil {
		customer.PoolGallons = input.PoolGallons
	}
	if input.PoolType != nil {
		customer.PoolType = *input.PoolType
	}
	if input.SurfaceType != nil {
		customer.SurfaceType = *input.SurfaceType
	}
	if input.SortOrder != nil {
		customer.SortOrder = input.SortOrder
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Service logs and chemical usage
// records keep their (now dangling) customer references; there is no
// cascade.
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Where("id = ?", customerUUID).Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// NormalizeCustomerOrder backfills sort orders for the caller's customers.
// Customers that already have one are untouched, so re-running is a no-op.
func NormalizeCustomerOrder(c *gin.Context) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("created_by = ?", identity.(string)).
		Order("created_at ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	writes := schedule.InitializeOrder(customers)
	if len(writes) == 0 {
		c.JSON(http.StatusOK, gin.H{"assigned": 0})
		return
	}

	if err := applyOrderWrites(writes); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign sort order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assigned": len(writes)})
}

// moveGuard allows one in-flight move per caller. A move arriving while
// another is pending is rejected, not queued.
var moveGuard sync.Map

// MoveCustomerUp swaps a customer with its predecessor in the day group
func MoveCustomerUp(c *gin.Context) {
	moveCustomer(c, schedule.MoveUp)
}

// MoveCustomerDown swaps a customer with its successor in the day group
func MoveCustomerDown(c *gin.Context) {
	moveCustomer(c, schedule.MoveDown)
}

func moveCustomer(c *gin.Context, dir schedule.MoveDirection) {
	identity, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}
	email := identity.(string)

	if _, busy := moveGuard.LoadOrStore(email, true); busy {
		utils.RespondWithError(c, http.StatusConflict, "Another move is still in flight")
		return
	}
	defer moveGuard.Delete(email)

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ? AND created_by = ?", customerUUID, email).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var dayGroup []models.Customer
	if err := config.DB.Where("created_by = ? AND service_day = ?", email, customer.ServiceDay).
		Order("created_at ASC").Find(&dayGroup).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve day group")
		return
	}

	writes := schedule.PlanMove(dayGroup, customer.ID, dir)
	if len(writes) == 0 {
		// First or last in the group: nothing to swap
		c.JSON(http.StatusOK, gin.H{"moved": false})
		return
	}

	// Both writes go out concurrently. If one fails the other is not rolled
	// back; the caller sees the failure and the group may be left with a
	// duplicated sort order until reordered by hand.
	if err := applyOrderWrites(writes); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to move customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": true})
}

func applyOrderWrites(writes []schedule.OrderAssignment) error {
	var wg sync.WaitGroup
	errs := make([]error, len(writes))
	for i, w := range writes {
		wg.Add(1)
		go func(i int, w schedule.OrderAssignment) {
			defer wg.Done()
			errs[i] = config.DB.Model(&models.Customer{}).
				Where("id = ?", w.CustomerID).
				Update("sort_order", w.SortOrder).Error
		}(i, w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
