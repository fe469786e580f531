package controllers

import (
	"bytes"
	"fmt"
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
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type OrderController struct {
	DB       *gorm.DB
	Location *time.Location
}

func NewOrderController(db *gorm.DB, loc *time.Location) *OrderController {
	return &OrderController{DB: db, Location: loc}
}

// inRange restricts created_at to r; open bounds are not filtered.
func inRange(db *gorm.DB, r services.DayRange) *gorm.DB {
	if r.From != nil {
		db = db.Where("created_at >= ?", *r.From)
	}
	if r.To != nil {
		db = db.Where("created_at <= ?", *r.To)
	}
	return db
}

// findOrders -> orders of r matching search on name, order code or whatsapp, newest first.
func findOrders(db *gorm.DB, r services.DayRange, search string) ([]models.Order, error) {
	query := inRange(db.Model(&models.Order{}), r).Order("created_at DESC")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("(LOWER(nome) LIKE ? OR codigo_pedido LIKE ? OR whatsapp LIKE ?)",
			"%"+strings.ToLower(search)+"%", like, like)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return orders, nil
}

func (oc *OrderController) queryOrders(c *gin.Context) ([]models.Order, bool) {
	r, err := services.ParseDayRange(c.Query("start"), c.Query("end"), oc.Location)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return nil, false
	}

	orders, err := findOrders(oc.DB, r, c.Query("search"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	return orders, true
}

// GetOrders -> ?start=&end=&search=, with the summed total of the result
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, ok := oc.queryOrders(c)
	if !ok {
		return
	}

	total := services.SumTotals(orders)
	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders":          orders,
		"count":           len(orders),
		"total":           total.InexactFloat64(),
		"total_formatted": utils.FormatBRL(total),
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderTicket -> printable PDF ticket of one order
func (oc *OrderController) GetOrderTicket(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.RenderOrderTicket(&buf, order, oc.Location); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="pedido-%s.pdf"`, safeFileName(order.Code)))
	c.Data(http.StatusOK, mimePDF, buf.Bytes())
}

// ExportOrders -> same filters as GetOrders, as a spreadsheet
func (oc *OrderController) ExportOrders(c *gin.Context) {
	orders, ok := oc.queryOrders(c)
	if !ok {
		return
	}

	f, err := services.OrdersWorkbook(orders, oc.Location)
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

	name := "pedidos-" + time.Now().In(oc.Location).Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mimeXLSX, buf.Bytes())
}

func safeFileName(code string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, code)
	if clean == "" {
		return "sem-codigo"
	}
	return clean
}
