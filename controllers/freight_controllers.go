package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBand     = &CustomError{"km_end must be greater than km_start"}
	ErrNegativeFee     = &CustomError{"fee must not be negative"}
	ErrInvalidDistance = &CustomError{"km must be a non-negative number"}
	ErrNoBand          = &CustomError{"no freight band covers this distance"}
)

type FreightController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewFreightController(db *gorm.DB, events hub.Publisher) *FreightController {
	return &FreightController{DB: db, Events: events}
}

// GetBands -> ordered by starting km
func (fc *FreightController) GetBands(c *gin.Context) {
	var bands []models.FreightBand
	if err := fc.DB.Order("km_inicial").Find(&bands).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of freight bands", bands)
}

func (fc *FreightController) CreateBand(c *gin.Context) {
	var req struct {
		KmStart *float64 `json:"km_start" binding:"required"`
		KmEnd   *float64 `json:"km_end" binding:"required"`
		Fee     *float64 `json:"fee" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.KmStart < 0 || *req.KmEnd <= *req.KmStart {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidBand)
		return
	}
	if *req.Fee < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNegativeFee)
		return
	}

	band := models.FreightBand{KmStart: *req.KmStart, KmEnd: *req.KmEnd, Fee: *req.Fee}
	if err := fc.DB.Create(&band).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(fc.Events, "freight_bands")
	utils.RespondJSON(c, http.StatusCreated, "Freight band created", band)
}

func (fc *FreightController) DeleteBand(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if err := checkAffected(fc.DB.Where("id = ?", id).Delete(&models.FreightBand{})); err != nil {
		respondDBError(c, err)
		return
	}

	notify(fc.Events, "freight_bands")
	utils.RespondJSON(c, http.StatusOK, "Freight band deleted", nil)
}

// QuoteFreight -> fee of the first band containing ?km=
func (fc *FreightController) QuoteFreight(c *gin.Context) {
	km, err := strconv.ParseFloat(strings.Replace(c.Query("km"), ",", ".", 1), 64)
	if err != nil || km < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidDistance)
		return
	}

	var band models.FreightBand
	err = fc.DB.Where("km_inicial <= ? AND km_final >= ?", km, km).Order("km_inicial").First(&band).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, ErrNoBand)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Freight quote", gin.H{
		"km":            km,
		"fee":           band.Fee,
		"fee_formatted": utils.FormatBRL(decimal.NewFromFloat(band.Fee)),
		"band":          band,
	})
}
