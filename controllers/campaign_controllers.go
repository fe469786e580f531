package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ativo"
	StatusInactive = "inativo"
)

var (
	ErrTitleMissing         = &CustomError{"promotion is required"}
	ErrInvalidMessageCount  = &CustomError{"message_count must be between 1 and 3"}
	ErrInvalidStatus        = &CustomError{"status must be ativo or inativo"}
	ErrInvalidPromoFlag     = &CustomError{"promotion_active must be sim or nao"}
	ErrInvalidCampaignDate  = &CustomError{"dates must use the YYYY-MM-DD format"}
	ErrCampaignEndsTooEarly = &CustomError{"end_date must not be before start_date"}
)

type CampaignController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewCampaignController(db *gorm.DB, events hub.Publisher) *CampaignController {
	return &CampaignController{DB: db, Events: events}
}

// Promotions

func (cc *CampaignController) GetPromotions(c *gin.Context) {
	var promotions []models.Promotion
	if err := cc.DB.Order("created_at DESC").Find(&promotions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of promotions", promotions)
}

// CreatePromotion -> new promotions start active
func (cc *CampaignController) CreatePromotion(c *gin.Context) {
	var req struct {
		Title string  `json:"title"`
		Rules *string `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	title := trimmed(&req.Title)
	if title == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrTitleMissing)
		return
	}

	promotion := models.Promotion{Title: *title, Rules: trimmed(req.Rules), Active: models.Ptr(true)}
	if err := cc.DB.Create(&promotion).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(cc.Events, "promotions")
	utils.RespondJSON(c, http.StatusCreated, "Promotion created", promotion)
}

func (cc *CampaignController) SetPromotionActive(c *gin.Context) {
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

	if err := updateRow(cc.DB, &models.Promotion{}, map[string]interface{}{"ativa": *req.Active}, "id = ?", id); err != nil {
		respondDBError(c, err)
		return
	}

	notify(cc.Events, "promotions")
	utils.RespondJSON(c, http.StatusOK, "Promotion updated", nil)
}

func (cc *CampaignController) DeletePromotion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := checkAffected(cc.DB.Delete(&models.Promotion{}, id)); err != nil {
		respondDBError(c, err)
		return
	}

	notify(cc.Events, "promotions")
	utils.RespondJSON(c, http.StatusOK, "Promotion deleted", nil)
}

// Birthday campaign

func (cc *CampaignController) GetBirthdayCampaign(c *gin.Context) {
	var campaign models.BirthdayCampaign
	err := cc.DB.Order("id").First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Birthday campaign not configured", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Birthday campaign", campaign)
}

// SaveBirthdayCampaign -> single-row upsert
func (cc *CampaignController) SaveBirthdayCampaign(c *gin.Context) {
	var req struct {
		Message1     *string `json:"message_1"`
		Message2     *string `json:"message_2"`
		Message3     *string `json:"message_3"`
		MessageCount *int    `json:"message_count"`
		Status       string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	count := 1
	if req.MessageCount != nil {
		count = *req.MessageCount
	}
	if count < 1 || count > 3 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidMessageCount)
		return
	}
	status, err := campaignStatus(req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var campaign models.BirthdayCampaign
	if err := cc.DB.Order("id").First(&campaign).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	campaign.Message1 = trimmed(req.Message1)
	campaign.Message2 = trimmed(req.Message2)
	campaign.Message3 = trimmed(req.Message3)
	campaign.MessageCount = &count
	campaign.Status = &status

	if err := cc.DB.Save(&campaign).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(cc.Events, "birthday_campaign")
	utils.RespondJSON(c, http.StatusOK, "Birthday campaign saved", campaign)
}

// Recovery campaign

func (cc *CampaignController) GetRecoveryCampaign(c *gin.Context) {
	var campaign models.RecoveryCampaign
	err := cc.DB.Order("id").First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Recovery campaign not configured", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recovery campaign", campaign)
}

// SaveRecoveryCampaign -> single-row upsert, blank dates are cleared
func (cc *CampaignController) SaveRecoveryCampaign(c *gin.Context) {
	var req struct {
		Message         *string `json:"message"`
		Promotion       *string `json:"promotion"`
		StartDate       string  `json:"start_date"`
		EndDate         string  `json:"end_date"`
		Status          string  `json:"status"`
		PromotionActive string  `json:"promotion_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status, err := campaignStatus(req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	promoFlag := req.PromotionActive
	switch promoFlag {
	case "":
		promoFlag = "nao"
	case "sim", "nao":
	default:
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidPromoFlag)
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		utils.RespondError(c, http.StatusBadRequest, ErrCampaignEndsTooEarly)
		return
	}

	var campaign models.RecoveryCampaign
	if err := cc.DB.Order("id").First(&campaign).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	campaign.Message = trimmed(req.Message)
	campaign.Promotion = trimmed(req.Promotion)
	campaign.StartDate = start
	campaign.EndDate = end
	campaign.Status = &status
	campaign.PromotionActive = &promoFlag

	if err := cc.DB.Save(&campaign).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(cc.Events, "recovery_campaign")
	utils.RespondJSON(c, http.StatusOK, "Recovery campaign saved", campaign)
}

func campaignStatus(s string) (string, error) {
	switch s {
	case "":
		return StatusInactive, nil
	case StatusActive, StatusInactive:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// parseDate -> nil for a blank date
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrInvalidCampaignDate
	}
	return &d, nil
}
