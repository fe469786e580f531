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

func setupHoursRouter(db *gorm.DB, events *eventRecorder) *gin.Engine {
	router := newRouter()
	ctrl := controllers.NewHoursController(db, events)
	router.GET("/admin/hours", ctrl.GetBusinessHours)
	router.POST("/admin/hours/init", ctrl.InitBusinessHours)
	router.PUT("/admin/hours/:weekday", ctrl.UpdateBusinessHour)
	router.PATCH("/admin/hours/:weekday/active", ctrl.SetBusinessHourActive)
	router.GET("/admin/extra-hours", ctrl.GetExtraHours)
	router.POST("/admin/extra-hours", ctrl.CreateExtraHour)
	router.PATCH("/admin/extra-hours/:id/active", ctrl.SetExtraHourActive)
	router.DELETE("/admin/extra-hours/:id", ctrl.DeleteExtraHour)
	return router
}

func TestInitBusinessHours(t *testing.T) {
	db := setupTestDB(t)
	router := setupHoursRouter(db, &eventRecorder{})

	// Monday already configured
	require.NoError(t, db.Create(&models.BusinessHour{WeekdayID: 1, WeekdayName: "Segunda-feira", OpensAt: "18:00", ClosesAt: "23:00", Active: true}).Error)

	w, resp := doJSON(t, router, http.MethodPost, "/admin/hours/init", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created []models.BusinessHour
	decode(t, resp.Data, &created)
	assert.Len(t, created, 6)

	w, resp = doJSON(t, router, http.MethodGet, "/admin/hours", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hours []models.BusinessHour
	decode(t, resp.Data, &hours)
	require.Len(t, hours, 7)
	assert.Equal(t, 0, hours[0].WeekdayID)
	assert.Equal(t, "Domingo", hours[0].WeekdayName)
	assert.Equal(t, "08:00", hours[0].OpensAt)
	assert.Equal(t, "22:00", hours[0].ClosesAt)
	assert.True(t, hours[0].Active)
	assert.Equal(t, "18:00", hours[1].OpensAt, "existing weekday must be kept")
	assert.Equal(t, "Sábado", hours[6].WeekdayName)

	w, resp = doJSON(t, router, http.MethodPost, "/admin/hours/init", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "all weekdays are already registered", resp.Message)
}

func TestUpdateBusinessHour(t *testing.T) {
	db := setupTestDB(t)
	events := &eventRecorder{}
	router := setupHoursRouter(db, events)
	w, _ := doJSON(t, router, http.MethodPost, "/admin/hours/init", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/hours/5", map[string]string{"opens_at": "17:30", "closes_at": "23:59"})
	assert.Equal(t, http.StatusOK, w.Code)

	var friday models.BusinessHour
	require.NoError(t, db.First(&friday, "dia_semana_id = ?", 5).Error)
	assert.Equal(t, "17:30", friday.OpensAt)
	assert.Equal(t, "23:59", friday.ClosesAt)

	for _, bad := range []map[string]string{
		{"opens_at": "24:00", "closes_at": "23:00"},
		{"opens_at": "8:00", "closes_at": "23:00"},
		{"opens_at": "08:60", "closes_at": "23:00"},
	} {
		w, _ = doJSON(t, router, http.MethodPut, "/admin/hours/5", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	w, _ = doJSON(t, router, http.MethodPut, "/admin/hours/7", map[string]string{"opens_at": "10:00", "closes_at": "11:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/admin/hours/0/active", map[string]bool{"active": false})
	assert.Equal(t, http.StatusOK, w.Code)
	var sunday models.BusinessHour
	require.NoError(t, db.First(&sunday, "dia_semana_id = ?", 0).Error)
	assert.False(t, sunday.Active)

	// unchanged value still succeeds
	w, _ = doJSON(t, router, http.MethodPatch, "/admin/hours/0/active", map[string]bool{"active": false})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, events.resources(), "hours")
}

func TestSetActiveOnMissingWeekday(t *testing.T) {
	db := setupTestDB(t)
	router := setupHoursRouter(db, &eventRecorder{})

	w, _ := doJSON(t, router, http.MethodPatch, "/admin/hours/3/active", map[string]bool{"active": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtraHoursCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := setupHoursRouter(db, &eventRecorder{})

	w, _ := doJSON(t, router, http.MethodPost, "/admin/extra-hours", map[string]string{"schedule": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/admin/extra-hours", map[string]string{
		"schedule": "25/12 fechado",
		"details":  "Natal",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var extra models.ExtraHour
	decode(t, resp.Data, &extra)
	require.NotNil(t, extra.Active)
	assert.True(t, *extra.Active)

	url := "/admin/extra-hours/" + itoa(extra.ID)
	w, _ = doJSON(t, router, http.MethodPatch, url+"/active", map[string]bool{"active": false})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&extra, extra.ID).Error)
	assert.False(t, *extra.Active)

	w, _ = doJSON(t, router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/admin/extra-hours/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
