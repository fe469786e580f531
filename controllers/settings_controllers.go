package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

var (
	ErrNegativeSetting   = &CustomError{"times and distance must not be negative"}
	ErrResponseTime      = &CustomError{"response_minutes must be at least 1"}
	ErrGreetingMissing   = &CustomError{"greeting text is required"}
	ErrPhoneMissing      = &CustomError{"at least one phone number is required"}
	ErrSpecialNumberData = &CustomError{"name and phone are required"}
)

// Settings used when none were saved yet.
const (
	DefaultDeliveryMinutes = 30
	DefaultDelayMinutes    = 10
	DefaultMaxDistanceKm   = 10
	DefaultResponseMinutes = 5
)

type SettingsController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewSettingsController(db *gorm.DB, events hub.Publisher) *SettingsController {
	return &SettingsController{DB: db, Events: events}
}

func defaultSettings() models.BotSettings {
	return models.BotSettings{
		DeliveryMinutes: models.Ptr(DefaultDeliveryMinutes),
		DelayMinutes:    models.Ptr(DefaultDelayMinutes),
		MaxDistanceKm:   models.Ptr(float64(DefaultMaxDistanceKm)),
		ResponseMinutes: DefaultResponseMinutes,
		Status:          models.Ptr(StatusActive),
	}
}

// GetSettings -> saved bot settings, or the defaults
func (sc *SettingsController) GetSettings(c *gin.Context) {
	var settings models.BotSettings
	err := sc.DB.Order("id").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Default settings", defaultSettings())
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bot settings", settings)
}

// SaveSettings -> single-row upsert; omitted fields fall back to defaults
func (sc *SettingsController) SaveSettings(c *gin.Context) {
	var req struct {
		DeliveryMinutes *int     `json:"delivery_minutes"`
		DelayMinutes    *int     `json:"delay_minutes"`
		MaxDistanceKm   *float64 `json:"max_distance_km"`
		ResponseMinutes *int     `json:"response_minutes"`
		Status          string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	def := defaultSettings()
	delivery := valueOr(req.DeliveryMinutes, *def.DeliveryMinutes)
	delay := valueOr(req.DelayMinutes, *def.DelayMinutes)
	distance := valueOr(req.MaxDistanceKm, *def.MaxDistanceKm)
	response := valueOr(req.ResponseMinutes, def.ResponseMinutes)

	if delivery < 0 || delay < 0 || distance < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNegativeSetting)
		return
	}
	if response < 1 {
		utils.RespondError(c, http.StatusBadRequest, ErrResponseTime)
		return
	}
	status := StatusActive
	if req.Status != "" {
		var err error
		if status, err = campaignStatus(req.Status); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	var settings models.BotSettings
	if err := sc.DB.Order("id").First(&settings).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	settings.DeliveryMinutes = &delivery
	settings.DelayMinutes = &delay
	settings.MaxDistanceKm = &distance
	settings.ResponseMinutes = response
	settings.Status = &status

	if err := sc.DB.Save(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(sc.Events, "settings")
	utils.RespondJSON(c, http.StatusOK, "Settings saved", settings)
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

// Greetings

func (sc *SettingsController) GetGreetings(c *gin.Context) {
	var greetings []models.Greeting
	if err := sc.DB.Order("created_at DESC").Find(&greetings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of greetings", greetings)
}

// CreateGreeting -> the new greeting becomes the only active one
func (sc *SettingsController) CreateGreeting(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	text := trimmed(&req.Text)
	if text == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrGreetingMissing)
		return
	}

	greeting := models.Greeting{Text: *text, Active: models.Ptr(true)}
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAll(tx, &models.Greeting{}); err != nil {
			return err
		}
		return tx.Create(&greeting).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(sc.Events, "greetings")
	utils.RespondJSON(c, http.StatusCreated, "Greeting created", greeting)
}

func (sc *SettingsController) SetGreetingActive(c *gin.Context) {
	sc.setExclusiveActive(c, &models.Greeting{}, "greetings")
}

func (sc *SettingsController) DeleteGreeting(c *gin.Context) {
	sc.deleteByID(c, &models.Greeting{}, "greetings", "Greeting deleted")
}

// Admin phones

func (sc *SettingsController) GetAdminPhones(c *gin.Context) {
	var phones []models.AdminPhone
	if err := sc.DB.Order("created_at DESC").Find(&phones).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of admin phones", phones)
}

// CreateAdminPhone -> the new pair of numbers becomes the only active one
func (sc *SettingsController) CreateAdminPhone(c *gin.Context) {
	var req struct {
		AttendantPhone *string `json:"attendant_phone"`
		ManagerPhone   *string `json:"manager_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	phone := models.AdminPhone{
		AttendantPhone: trimmed(req.AttendantPhone),
		ManagerPhone:   trimmed(req.ManagerPhone),
		Active:         models.Ptr(true),
	}
	if phone.AttendantPhone == nil && phone.ManagerPhone == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrPhoneMissing)
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAll(tx, &models.AdminPhone{}); err != nil {
			return err
		}
		return tx.Create(&phone).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(sc.Events, "admin_phones")
	utils.RespondJSON(c, http.StatusCreated, "Admin phone created", phone)
}

func (sc *SettingsController) SetAdminPhoneActive(c *gin.Context) {
	sc.setExclusiveActive(c, &models.AdminPhone{}, "admin_phones")
}

func (sc *SettingsController) DeleteAdminPhone(c *gin.Context) {
	sc.deleteByID(c, &models.AdminPhone{}, "admin_phones", "Admin phone deleted")
}

// Special numbers

func (sc *SettingsController) GetSpecialNumbers(c *gin.Context) {
	var numbers []models.SpecialNumber
	if err := sc.DB.Order("created_at DESC").Find(&numbers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of special numbers", numbers)
}

func (sc *SettingsController) CreateSpecialNumber(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name, phone := trimmed(&req.Name), trimmed(&req.Phone)
	if name == nil || phone == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrSpecialNumberData)
		return
	}

	number := models.SpecialNumber{Name: *name, Phone: *phone}
	if err := sc.DB.Create(&number).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(sc.Events, "special_numbers")
	utils.RespondJSON(c, http.StatusCreated, "Special number created", number)
}

func (sc *SettingsController) DeleteSpecialNumber(c *gin.Context) {
	sc.deleteByID(c, &models.SpecialNumber{}, "special_numbers", "Special number deleted")
}

// setExclusiveActive -> activating a row deactivates every other row of the
// table; deactivating only touches the row itself.
func (sc *SettingsController) setExclusiveActive(c *gin.Context, model interface{}, resource string) {
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

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if *req.Active {
			if err := tx.Model(model).Where("id <> ?", id).Update("ativa", false).Error; err != nil {
				return err
			}
		}
		return updateRow(tx, model, map[string]interface{}{"ativa": *req.Active}, "id = ?", id)
	})
	if err != nil {
		respondDBError(c, err)
		return
	}

	notify(sc.Events, resource)
	utils.RespondJSON(c, http.StatusOK, "Active flag updated", gin.H{"id": id, "active": *req.Active})
}

func (sc *SettingsController) deleteByID(c *gin.Context, model interface{}, resource, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := checkAffected(sc.DB.Delete(model, id)); err != nil {
		respondDBError(c, err)
		return
	}

	notify(sc.Events, resource)
	utils.RespondJSON(c, http.StatusOK, message, nil)
}

func deactivateAll(tx *gorm.DB, model interface{}) error {
	return tx.Model(model).Where("ativa = ?", true).Update("ativa", false).Error
}
