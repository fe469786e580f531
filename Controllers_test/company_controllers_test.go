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

func setupCompanyRouter(db *gorm.DB, events *eventRecorder) *gin.Engine {
	router := newRouter()
	ctrl := controllers.NewCompanyController(db, events)
	router.GET("/admin/company", ctrl.GetCompany)
	router.PUT("/admin/company", ctrl.SaveCompany)
	return router
}

func TestCompanyUpsert(t *testing.T) {
	db := setupTestDB(t)
	events := &eventRecorder{}
	router := setupCompanyRouter(db, events)

	w, resp := doJSON(t, router, http.MethodGet, "/admin/company", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Status)
	assert.Empty(t, resp.Data)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/company", map[string]interface{}{
		"name":  "Goodzap Pizzaria",
		"phone": " 11 4000-0000 ",
		"city":  "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/admin/company", map[string]interface{}{
		"name": "Goodzap Pizzaria Centro",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.CompanyInfo
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "upsert must keep a single row")
	assert.Equal(t, "Goodzap Pizzaria Centro", *rows[0].Name)
	assert.Nil(t, rows[0].City)

	w, resp = doJSON(t, router, http.MethodGet, "/admin/company", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var company models.CompanyInfo
	decode(t, resp.Data, &company)
	assert.Equal(t, "Goodzap Pizzaria Centro", *company.Name)

	assert.Equal(t, []string{"company", "company"}, events.resources())
}

func TestCompanyRejectsInvalidJSON(t *testing.T) {
	db := setupTestDB(t)
	router := setupCompanyRouter(db, &eventRecorder{})

	w, resp := doJSON(t, router, http.MethodPut, "/admin/company", []int{1, 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Status)
	assert.NotEmpty(t, resp.Message)
}
