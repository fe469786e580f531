package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/services"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

// MetricsDefaultDays is the window used when no dates are given.
const MetricsDefaultDays = 30

type MetricsController struct {
	DB       *gorm.DB
	Location *time.Location
	Now      func() time.Time
}

func NewMetricsController(db *gorm.DB, loc *time.Location) *MetricsController {
	return &MetricsController{DB: db, Location: loc, Now: time.Now}
}

type metricsResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	services.SalesMetrics
}

func (mc *MetricsController) compute(c *gin.Context) (services.DayRange, services.SalesMetrics, bool) {
	r, err := services.ParseDayRange(c.Query("start"), c.Query("end"), mc.Location)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return r, services.SalesMetrics{}, false
	}
	r = r.WithDefaults(services.LastDays(MetricsDefaultDays, mc.Now().In(mc.Location)))
	if r.From.After(*r.To) {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidRange)
		return r, services.SalesMetrics{}, false
	}

	var orders []models.Order
	if err := inRange(mc.DB, r).Select("id", "pedido", "total", "created_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return r, services.SalesMetrics{}, false
	}
	return r, services.Aggregate(orders), true
}

// GetMetrics -> product ranking and chart data for ?start=&end= (last 30 days by default)
func (mc *MetricsController) GetMetrics(c *gin.Context) {
	r, metrics, ok := mc.compute(c)
	if !ok {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sales metrics", metricsResponse{
		Start:        r.From.Format("2006-01-02"),
		End:          r.To.Format("2006-01-02"),
		SalesMetrics: metrics,
	})
}

// GetMetricsChart -> the chart data rendered as a PNG pie chart
func (mc *MetricsController) GetMetricsChart(c *gin.Context) {
	_, metrics, ok := mc.compute(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.RenderSalesChart(&buf, metrics.Chart); err != nil {
		if errors.Is(err, services.ErrNoSales) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ExportMetrics -> full product ranking as a spreadsheet
func (mc *MetricsController) ExportMetrics(c *gin.Context) {
	r, metrics, ok := mc.compute(c)
	if !ok {
		return
	}

	f, err := services.RankingWorkbook(metrics)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	name := "ranking-" + r.From.Format("2006-01-02") + "-" + r.To.Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mimeXLSX, buf.Bytes())
}
