package controllers

import (
	"net/http"
	"testing"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPlanForController(t *testing.T, db *gorm.DB) *models.NutritionPlan {
	t.Helper()

	plan := models.NutritionPlan{
		Name:    "Controller plan",
		OwnerID: 1,
		Days: []models.NutritionDay{
			{
				Weekday:       "monday",
				TotalCalories: 800,
				Meals: []models.Meal{
					{Name: "Breakfast", Time: "08:00:00", Calories: 300,
						Foods: []models.Food{{Name: "Oats", Quantity: 80, Unit: "g", Calories: 300}}},
					{Name: "Lunch", Time: "12:00:00", Calories: 500,
						Foods: []models.Food{{Name: "Rice bowl", Quantity: 350, Unit: "g", Calories: 500}}},
				},
			},
		},
	}
	require.NoError(t, db.Create(&plan).Error)
	return &plan
}

func newNutritionPlanController(db *gorm.DB) *NutritionPlanController {
	repo := repository.NewNutritionPlanRepository(db)
	svc := services.NewPlanService(db, nil, nil)
	return NewNutritionPlanController(repo, svc)
}

func TestBulkUpdateNutritionPlanEndpoint(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)
	plan := seedPlanForController(t, db)

	router := setupTestRouter()
	router.PUT("/plans/nutrition/:id/bulk", fakeAuth(1, models.RoleCoach), controller.BulkUpdateNutritionPlan)

	w := doJSON(t, router, http.MethodPut, "/plans/nutrition/1/bulk",
		`{"name":"Renamed","days":null}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", data["name"])
	// Omitted days key leaves the tree in place.
	assert.Len(t, data["days"], 1)

	var stored models.NutritionPlan
	require.NoError(t, db.First(&stored, plan.ID).Error)
	assert.Equal(t, "Renamed", stored.Name)
}

func TestBulkUpdateNutritionPlanEndpointNotFound(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)

	router := setupTestRouter()
	router.PUT("/plans/nutrition/:id/bulk", fakeAuth(1, models.RoleCoach), controller.BulkUpdateNutritionPlan)

	w := doJSON(t, router, http.MethodPut, "/plans/nutrition/777/bulk", `{"name":"Nope"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Nutrition plan not found", body["message"])
}

func TestBulkUpdateNutritionPlanEndpointInvalidID(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)

	router := setupTestRouter()
	router.PUT("/plans/nutrition/:id/bulk", fakeAuth(1, models.RoleCoach), controller.BulkUpdateNutritionPlan)

	w := doJSON(t, router, http.MethodPut, "/plans/nutrition/abc/bulk", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkUpdateNutritionPlanEndpointInvalidWeekday(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)
	seedPlanForController(t, db)

	router := setupTestRouter()
	router.PUT("/plans/nutrition/:id/bulk", fakeAuth(1, models.RoleCoach), controller.BulkUpdateNutritionPlan)

	w := doJSON(t, router, http.MethodPut, "/plans/nutrition/1/bulk",
		`{"days":[{"weekday":"funday"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid request data", body["message"])
}

func TestBulkUpdateNutritionPlanEndpointEmptyDays(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)
	seedPlanForController(t, db)

	router := setupTestRouter()
	router.PUT("/plans/nutrition/:id/bulk", fakeAuth(1, models.RoleCoach), controller.BulkUpdateNutritionPlan)

	w := doJSON(t, router, http.MethodPut, "/plans/nutrition/1/bulk", `{"days":[]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var dayCount int64
	require.NoError(t, db.Model(&models.NutritionDay{}).Count(&dayCount).Error)
	assert.Zero(t, dayCount)
}

func TestGetNutritionPlanEndpoint(t *testing.T) {
	db := setupTestDB(t)
	controller := newNutritionPlanController(db)
	seedPlanForController(t, db)

	router := setupTestRouter()
	router.GET("/plans/nutrition/:id", fakeAuth(1, models.RoleCoach), controller.GetNutritionPlan)

	w := doJSON(t, router, http.MethodGet, "/plans/nutrition/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Controller plan", data["name"])

	w = doJSON(t, router, http.MethodGet, "/plans/nutrition/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
