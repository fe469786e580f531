package controllers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidWeekday  = &CustomError{"weekday must be between 0 and 6"}
	ErrInvalidTime     = &CustomError{"times must use the HH:MM format"}
	ErrWeekdaysPresent = &CustomError{"all weekdays are already registered"}
	ErrScheduleMissing = &CustomError{"schedule is required"}
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type HoursController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewHoursController(db *gorm.DB, events hub.Publisher) *HoursController {
	return &HoursController{DB: db, Events: events}
}

func parseWeekday(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("weekday"))
	if err != nil || day < 0 || day > 6 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidWeekday)
		return 0, false
	}
	return day, true
}

// GetBusinessHours -> weekly schedule, Sunday first
func (hc *HoursController) GetBusinessHours(c *gin.Context) {
	var hours []models.BusinessHour
	if err := hc.DB.Order("dia_semana_id").Find(&hours).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Business hours", hours)
}

// SetBusinessHourActive -> opens or closes a weekday
func (hc *HoursController) SetBusinessHourActive(c *gin.Context) {
	day, ok := parseWeekday(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := updateRow(hc.DB, &models.BusinessHour{}, map[string]interface{}{"ativo": *req.Active}, "dia_semana_id = ?", day)
	if err != nil {
		respondDBError(c, err)
		return
	}

	notify(hc.Events, "hours")
	utils.RespondJSON(c, http.StatusOK, "Business hour updated", nil)
}

// UpdateBusinessHour -> changes opening and closing time of a weekday
func (hc *HoursController) UpdateBusinessHour(c *gin.Context) {
	day, ok := parseWeekday(c)
	if !ok {
		return
	}

	var req struct {
		OpensAt  string `json:"opens_at" binding:"required"`
		ClosesAt string `json:"closes_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !clockPattern.MatchString(req.OpensAt) || !clockPattern.MatchString(req.ClosesAt) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidTime)
		return
	}

	updates := map[string]interface{}{"abre_as": req.OpensAt, "fecha_as": req.ClosesAt}
	if err := updateRow(hc.DB, &models.BusinessHour{}, updates, "dia_semana_id = ?", day); err != nil {
		respondDBError(c, err)
		return
	}

	notify(hc.Events, "hours")
	utils.RespondJSON(c, http.StatusOK, "Business hour updated", nil)
}

// InitBusinessHours -> creates the missing weekdays with a default 08:00-22:00 schedule
func (hc *HoursController) InitBusinessHours(c *gin.Context) {
	var existing []int
	if err := hc.DB.Model(&models.BusinessHour{}).Pluck("dia_semana_id", &existing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	registered := make(map[int]bool, len(existing))
	for _, id := range existing {
		registered[id] = true
	}

	var missing []models.BusinessHour
	for _, d := range models.Weekdays {
		if !registered[d.ID] {
			missing = append(missing, models.BusinessHour{
				WeekdayID:   d.ID,
				WeekdayName: d.Name,
				OpensAt:     "08:00",
				ClosesAt:    "22:00",
				Active:      true,
			})
		}
	}
	if len(missing) == 0 {
		utils.RespondError(c, http.StatusConflict, ErrWeekdaysPresent)
		return
	}

	if err := hc.DB.Create(&missing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Registered %d weekdays", len(missing))
	notify(hc.Events, "hours")
	utils.RespondJSON(c, http.StatusCreated, "Weekdays registered", missing)
}

// GetExtraHours -> newest first
func (hc *HoursController) GetExtraHours(c *gin.Context) {
	var extras []models.ExtraHour
	if err := hc.DB.Order("created_at DESC").Find(&extras).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Extra hours", extras)
}

func (hc *HoursController) CreateExtraHour(c *gin.Context) {
	var req struct {
		Schedule string  `json:"schedule"`
		Details  *string `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	schedule := trimmed(&req.Schedule)
	if schedule == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrScheduleMissing)
		return
	}

	extra := models.ExtraHour{
		Schedule: *schedule,
		Details:  trimmed(req.Details),
		Active:   models.Ptr(true),
	}
	if err := hc.DB.Create(&extra).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(hc.Events, "extra_hours")
	utils.RespondJSON(c, http.StatusCreated, "Extra hour created", extra)
}

func (hc *HoursController) SetExtraHourActive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := updateRow(hc.DB, &models.ExtraHour{}, map[string]interface{}{"ativa": *req.Active}, "id = ?", id)
	if err != nil {
		respondDBError(c, err)
		return
	}

	notify(hc.Events, "extra_hours")
	utils.RespondJSON(c, http.StatusOK, "Extra hour updated", nil)
}

func (hc *HoursController) DeleteExtraHour(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := checkAffected(hc.DB.Delete(&models.ExtraHour{}, id)); err != nil {
		respondDBError(c, err)
		return
	}

	notify(hc.Events, "extra_hours")
	utils.RespondJSON(c, http.StatusOK, "Extra hour deleted", nil)
}
