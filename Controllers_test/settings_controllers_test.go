package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/controllers"
	"github.com/goodzap/backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSettingsRouter(db *gorm.DB, events *eventRecorder) *gin.Engine {
	router := newRouter()
	ctrl := controllers.NewSettingsController(db, events)
	router.GET("/admin/settings", ctrl.GetSettings)
	router.PUT("/admin/settings", ctrl.SaveSettings)
	router.GET("/admin/settings/greetings", ctrl.GetGreetings)
	router.POST("/admin/settings/greetings", ctrl.CreateGreeting)
	router.PATCH("/admin/settings/greetings/:id/active", ctrl.SetGreetingActive)
	router.DELETE("/admin/settings/greetings/:id", ctrl.DeleteGreeting)
	router.GET("/admin/settings/admin-phones", ctrl.GetAdminPhones)
	router.POST("/admin/settings/admin-phones", ctrl.CreateAdminPhone)
	router.PATCH("/admin/settings/admin-phones/:id/active", ctrl.SetAdminPhoneActive)
	router.DELETE("/admin/settings/admin-phones/:id", ctrl.DeleteAdminPhone)
	router.GET("/admin/settings/special-numbers", ctrl.GetSpecialNumbers)
	router.POST("/admin/settings/special-numbers", ctrl.CreateSpecialNumber)
	router.DELETE("/admin/settings/special-numbers/:id", ctrl.DeleteSpecialNumber)
	return router
}

func activeGreetings(t *testing.T, db *gorm.DB) []uint {
	var ids []uint
	require.NoError(t, db.Model(&models.Greeting{}).Where("ativa = ?", true).Order("id").Pluck("id", &ids).Error)
	return ids
}

func TestSettingsDefaultsAndUpsert(t *testing.T) {
	db := setupTestDB(t)
	router := setupSettingsRouter(db, &eventRecorder{})

	w, resp := doJSON(t, router, http.MethodGet, "/admin/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var settings models.BotSettings
	decode(t, resp.Data, &settings)
	assert.Equal(t, 30, *settings.DeliveryMinutes)
	assert.Equal(t, 10, *settings.DelayMinutes)
	assert.Equal(t, 10.0, *settings.MaxDistanceKm)
	assert.Equal(t, 5, settings.ResponseMinutes)
	assert.Equal(t, "ativo", *settings.Status)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/settings", map[string]interface{}{"delay_minutes": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/settings", map[string]interface{}{"response_minutes": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/settings", map[string]interface{}{
		"delivery_minutes": 45,
		"max_distance_km":  7.5,
		"status":           "inativo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPut, "/admin/settings", map[string]interface{}{
		"delivery_minutes": 50,
		"response_minutes": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.BotSettings
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 50, *rows[0].DeliveryMinutes)
	assert.Equal(t, 10.0, *rows[0].MaxDistanceKm)
	assert.Equal(t, 3, rows[0].ResponseMinutes)
	assert.Equal(t, "ativo", *rows[0].Status)
}

func TestGreetingsExclusiveActive(t *testing.T) {
	db := setupTestDB(t)
	events := &eventRecorder{}
	router := setupSettingsRouter(db, events)

	var ids []uint
	for _, text := range []string{"Olá!", "Bem-vindo!", "Boa noite!"} {
		w, resp := doJSON(t, router, http.MethodPost, "/admin/settings/greetings", map[string]string{"text": text})
		require.Equal(t, http.StatusCreated, w.Code)
		var g models.Greeting
		decode(t, resp.Data, &g)
		ids = append(ids, g.ID)
		assert.Equal(t, []uint{g.ID}, activeGreetings(t, db), "adding a greeting leaves only it active")
	}

	w, _ := doJSON(t, router, http.MethodPatch, "/admin/settings/greetings/"+itoa(ids[0])+"/active", map[string]bool{"active": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{ids[0]}, activeGreetings(t, db))

	// deactivating touches only that row
	w, _ = doJSON(t, router, http.MethodPatch, "/admin/settings/greetings/"+itoa(ids[0])+"/active", map[string]bool{"active": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, activeGreetings(t, db))

	// activating a missing row rolls back
	w, _ = doJSON(t, router, http.MethodPatch, "/admin/settings/greetings/"+itoa(ids[2])+"/active", map[string]bool{"active": true})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPatch, "/admin/settings/greetings/999/active", map[string]bool{"active": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []uint{ids[2]}, activeGreetings(t, db))

	w, _ = doJSON(t, router, http.MethodPost, "/admin/settings/greetings", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/admin/settings/greetings/"+itoa(ids[1]), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, r := range events.resources() {
		assert.Equal(t, "greetings", r)
	}
}

func TestAdminPhonesExclusiveActive(t *testing.T) {
	db := setupTestDB(t)
	router := setupSettingsRouter(db, &eventRecorder{})

	w, _ := doJSON(t, router, http.MethodPost, "/admin/settings/admin-phones", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/admin/settings/admin-phones", map[string]string{"attendant_phone": "5511911110000"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/admin/settings/admin-phones", map[string]string{"manager_phone": "5511922220000"})
	require.Equal(t, http.StatusCreated, w.Code)

	var phones []models.AdminPhone
	require.NoError(t, db.Order("id").Find(&phones).Error)
	require.Len(t, phones, 2)
	assert.False(t, *phones[0].Active)
	assert.True(t, *phones[1].Active)
}

func TestSpecialNumbers(t *testing.T) {
	db := setupTestDB(t)
	router := setupSettingsRouter(db, &eventRecorder{})

	w, resp := doJSON(t, router, http.MethodPost, "/admin/settings/special-numbers", map[string]string{"name": "Fornecedor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name and phone are required", resp.Message)

	w, resp = doJSON(t, router, http.MethodPost, "/admin/settings/special-numbers", map[string]string{"name": "Fornecedor", "phone": "5511933330000"})
	require.Equal(t, http.StatusCreated, w.Code)
	var number models.SpecialNumber
	decode(t, resp.Data, &number)

	w, _ = doJSON(t, router, http.MethodDelete, "/admin/settings/special-numbers/"+itoa(number.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.SpecialNumber{}).Count(&count).Error)
	assert.Zero(t, count)
}
