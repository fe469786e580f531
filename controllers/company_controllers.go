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

type CompanyController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewCompanyController(db *gorm.DB, events hub.Publisher) *CompanyController {
	return &CompanyController{DB: db, Events: events}
}

type companyRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	WhatsApp     *string `json:"whatsapp"`
	PostalCode   *string `json:"postal_code"`
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
}

// GetCompany -> the company row, null when nothing was saved yet
func (cc *CompanyController) GetCompany(c *gin.Context) {
	var company models.CompanyInfo
	err := cc.DB.Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Company not registered", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Company info", company)
}

// SaveCompany -> updates the first row, or creates it
func (cc *CompanyController) SaveCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var company models.CompanyInfo
	err := cc.DB.Order("id").First(&company).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	company.Name = trimmed(req.Name)
	company.Phone = trimmed(req.Phone)
	company.WhatsApp = trimmed(req.WhatsApp)
	company.PostalCode = trimmed(req.PostalCode)
	company.Street = trimmed(req.Street)
	company.Number = trimmed(req.Number)
	company.Neighborhood = trimmed(req.Neighborhood)
	company.City = trimmed(req.City)

	if err := cc.DB.Save(&company).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(cc.Events, "company")
	utils.RespondJSON(c, http.StatusOK, "Company info saved", company)
}
