package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/services"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

const (
	fallbackCompanyName = "EMPRESA"
	reportOrderLimit    = 100
)

type DashboardController struct {
	DB       *gorm.DB
	Location *time.Location
	Now      func() time.Time
}

func NewDashboardController(db *gorm.DB, loc *time.Location) *DashboardController {
	return &DashboardController{DB: db, Location: loc, Now: time.Now}
}

type DashboardSummary struct {
	CompanyName   string                     `json:"company_name"`
	CustomerCount int64                      `json:"customer_count"`
	OrderCount    int64                      `json:"order_count"`
	Revenue       services.RevenueComparison `json:"revenue"`
}

// GetDashboard -> headline numbers and the 30-day revenue comparison
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	var summary DashboardSummary

	if err := dc.DB.Model(&models.Customer{}).Count(&summary.CustomerCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Order{}).Count(&summary.OrderCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	name, err := dc.companyName()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	summary.CompanyName = name

	now := dc.Now().In(dc.Location)
	_, previousFrom := services.ComparisonBuckets(now)
	var orders []models.Order
	if err := dc.DB.Select("id", "total", "created_at").
		Where("created_at >= ? AND created_at <= ?", previousFrom, now).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	summary.Revenue = services.CompareRevenue(orders, now)

	utils.RespondJSON(c, http.StatusOK, "Dashboard", summary)
}

// GetReports -> customer count and the most recent orders with their revenue
func (dc *DashboardController) GetReports(c *gin.Context) {
	var customers int64
	if err := dc.DB.Model(&models.Customer{}).Count(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := dc.DB.Order("created_at DESC").Limit(reportOrderLimit).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	revenue := services.SumTotals(orders)
	utils.RespondJSON(c, http.StatusOK, "Reports", gin.H{
		"customer_count":    customers,
		"order_count":       len(orders),
		"revenue":           revenue.InexactFloat64(),
		"revenue_formatted": utils.FormatBRL(revenue),
		"orders":            orders,
	})
}

func (dc *DashboardController) companyName() (string, error) {
	var company models.CompanyInfo
	err := dc.DB.Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallbackCompanyName, nil
	}
	if err != nil {
		return "", err
	}
	if company.Name == nil || strings.TrimSpace(*company.Name) == "" {
		return fallbackCompanyName, nil
	}
	return strings.ToUpper(strings.TrimSpace(*company.Name)), nil
}
