package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/controllers"
	"github.com/goodzap/backoffice/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFreightRouter(db *gorm.DB) *gin.Engine {
	router := newRouter()
	ctrl := controllers.NewFreightController(db, &eventRecorder{})
	router.GET("/admin/freight-bands", ctrl.GetBands)
	router.POST("/admin/freight-bands", ctrl.CreateBand)
	router.GET("/admin/freight-bands/quote", ctrl.QuoteFreight)
	router.DELETE("/admin/freight-bands/:id", ctrl.DeleteBand)
	return router
}

func TestFreightBands(t *testing.T) {
	db := setupTestDB(t)
	router := setupFreightRouter(db)

	for _, band := range []map[string]float64{
		{"km_start": 3, "km_end": 6, "fee": 8},
		{"km_start": 0, "km_end": 3, "fee": 5},
	} {
		w, _ := doJSON(t, router, http.MethodPost, "/admin/freight-bands", band)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, _ := doJSON(t, router, http.MethodPost, "/admin/freight-bands", map[string]float64{"km_start": 6, "km_end": 6, "fee": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/admin/freight-bands", map[string]float64{"km_start": 6, "km_end": 9, "fee": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/admin/freight-bands", map[string]float64{"km_start": 6, "km_end": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := doJSON(t, router, http.MethodGet, "/admin/freight-bands", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bands []models.FreightBand
	decode(t, resp.Data, &bands)
	require.Len(t, bands, 2)
	assert.Equal(t, 0.0, bands[0].KmStart)
	_, err := uuid.Parse(bands[0].ID)
	assert.NoError(t, err)

	w, resp = doJSON(t, router, http.MethodGet, "/admin/freight-bands/quote?km=4,5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Fee          float64 `json:"fee"`
		FeeFormatted string  `json:"fee_formatted"`
	}
	decode(t, resp.Data, &quote)
	assert.Equal(t, 8.0, quote.Fee)
	assert.Equal(t, "R$ 8,00", quote.FeeFormatted)

	w, _ = doJSON(t, router, http.MethodGet, "/admin/freight-bands/quote?km=12", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = doJSON(t, router, http.MethodGet, "/admin/freight-bands/quote?km=perto", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/admin/freight-bands/"+bands[1].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodDelete, "/admin/freight-bands/"+bands[1].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = doJSON(t, router, http.MethodDelete, "/admin/freight-bands/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
