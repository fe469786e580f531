package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidID   = &CustomError{"invalid id"}
	ErrNotFound    = &CustomError{"record not found"}
	ErrNameMissing = &CustomError{"name is required"}
	ErrPriceType   = &CustomError{"price must be a string or a number"}
)

// parseID -> reads a numeric path param, answering 400 when it is not one.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// respondDBError -> 404 for a missing row, 500 for anything else.
func respondDBError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

// updateRow -> applies updates to the rows matching query.
// Unchanged rows are not reported by every driver, so existence is checked first.
func updateRow(db *gorm.DB, model interface{}, updates map[string]interface{}, query string, args ...interface{}) error {
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return db.Model(model).Where(query, args...).Updates(updates).Error
}

// checkAffected turns a write that matched no row into gorm.ErrRecordNotFound.
func checkAffected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func notify(events hub.Publisher, resource string) {
	if events != nil {
		events.Publish(hub.Invalidate(resource))
	}
}

// Price accepts "45,90", "45.90" or 45.9. Empty, unreadable, zero or
// negative amounts are stored as NULL. Booleans, objects and arrays are rejected.
type Price struct {
	Value *float64
}

func (p *Price) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		p.Value = nil
		return nil
	}
	if raw == "" || strings.ContainsRune("tf{[", rune(raw[0])) {
		return ErrPriceType
	}
	amount := utils.ParseMoney(strings.Trim(raw, `"`))
	if !amount.IsPositive() {
		p.Value = nil
		return nil
	}
	v := amount.Round(2).InexactFloat64()
	p.Value = &v
	return nil
}

// trimmed -> nil for blank input, the trimmed text otherwise.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
