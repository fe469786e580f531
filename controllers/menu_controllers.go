package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

var ErrCrustSizeMissing = &CustomError{"pizza size is required"}

type MenuController struct {
	DB     *gorm.DB
	Events hub.Publisher
}

func NewMenuController(db *gorm.DB, events hub.Publisher) *MenuController {
	return &MenuController{DB: db, Events: events}
}

type pizzaRequest struct {
	Name        *string `json:"name"`
	Ingredients *string `json:"ingredients"`
	PriceSmall  Price   `json:"price_small"`
	PriceMedium Price   `json:"price_medium"`
	PriceLarge  Price   `json:"price_large"`
	PriceGiant  Price   `json:"price_giant"`
	Available   *bool   `json:"available"`
}

type drinkRequest struct {
	Name      *string `json:"name"`
	Kind      *string `json:"kind"`
	Size      *string `json:"size"`
	Price     Price   `json:"price"`
	Available *bool   `json:"available"`
}

type crustRequest struct {
	PizzaSize *string `json:"pizza_size"`
	Price     Price   `json:"price"`
}

type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// GetMenu -> pizzas, drinks and crusts in one payload
func (mc *MenuController) GetMenu(c *gin.Context) {
	var (
		pizzas []models.Pizza
		drinks []models.Drink
		crusts []models.StuffedCrust
	)
	if err := mc.DB.Order("nome").Find(&pizzas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := mc.DB.Order("nome").Find(&drinks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := mc.DB.Order("id").Find(&crusts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"pizzas": pizzas,
		"drinks": drinks,
		"crusts": crusts,
	})
}

// Pizzas

func (mc *MenuController) GetPizzas(c *gin.Context) {
	var pizzas []models.Pizza
	if err := mc.DB.Order("nome").Find(&pizzas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of pizzas", pizzas)
}

func (mc *MenuController) CreatePizza(c *gin.Context) {
	var req pizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name := trimmed(req.Name)
	if name == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrNameMissing)
		return
	}

	pizza := models.Pizza{
		Name:        name,
		Ingredients: trimmed(req.Ingredients),
		PriceSmall:  req.PriceSmall.Value,
		PriceMedium: req.PriceMedium.Value,
		PriceLarge:  req.PriceLarge.Value,
		PriceGiant:  req.PriceGiant.Value,
		Available:   true,
	}
	if err := mc.DB.Create(&pizza).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	// default:true columns ignore a false value on insert
	if req.Available != nil && !*req.Available {
		if err := mc.DB.Model(&pizza).Update("disponivel", false).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		pizza.Available = false
	}

	notify(mc.Events, "menu")
	utils.RespondJSON(c, http.StatusCreated, "Pizza created", pizza)
}

func (mc *MenuController) UpdatePizza(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req pizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name := trimmed(req.Name)
	if name == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrNameMissing)
		return
	}

	updates := map[string]interface{}{
		"nome":                          *name,
		"ingredientes":                  trimmed(req.Ingredients),
		"valor_pizza_broto_4_fatias":    req.PriceSmall.Value,
		"valor_pizza_media_6_fatias":    req.PriceMedium.Value,
		"valor_pizza_grande_8_fatias":   req.PriceLarge.Value,
		"valor_pizza_gigante_12_fatias": req.PriceGiant.Value,
	}
	if req.Available != nil {
		updates["disponivel"] = *req.Available
	}
	if err := updateRow(mc.DB, &models.Pizza{}, updates, "id = ?", id); err != nil {
		respondDBError(c, err)
		return
	}

	var pizza models.Pizza
	if err := mc.DB.First(&pizza, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	notify(mc.Events, "menu")
	utils.RespondJSON(c, http.StatusOK, "Pizza updated", pizza)
}

func (mc *MenuController) SetPizzaAvailability(c *gin.Context) {
	mc.setAvailability(c, &models.Pizza{}, "menu", "Pizza")
}

func (mc *MenuController) DeletePizza(c *gin.Context) {
	mc.deleteByID(c, &models.Pizza{}, "menu", "Pizza deleted")
}

// Drinks

func (mc *MenuController) GetDrinks(c *gin.Context) {
	var drinks []models.Drink
	if err := mc.DB.Order("nome").Find(&drinks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of drinks", drinks)
}

func (mc *MenuController) CreateDrink(c *gin.Context) {
	var req drinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name := trimmed(req.Name)
	if name == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrNameMissing)
		return
	}

	drink := models.Drink{
		Name:      name,
		Kind:      trimmed(req.Kind),
		Size:      trimmed(req.Size),
		Price:     req.Price.Value,
		Available: true,
	}
	if err := mc.DB.Create(&drink).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if req.Available != nil && !*req.Available {
		if err := mc.DB.Model(&drink).Update("disponivel", false).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		drink.Available = false
	}

	notify(mc.Events, "drinks")
	utils.RespondJSON(c, http.StatusCreated, "Drink created", drink)
}

func (mc *MenuController) UpdateDrink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req drinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name := trimmed(req.Name)
	if name == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrNameMissing)
		return
	}

	updates := map[string]interface{}{
		"nome":    *name,
		"tipo":    trimmed(req.Kind),
		"tamanho": trimmed(req.Size),
		"valor":   req.Price.Value,
	}
	if req.Available != nil {
		updates["disponivel"] = *req.Available
	}
	if err := updateRow(mc.DB, &models.Drink{}, updates, "id = ?", id); err != nil {
		respondDBError(c, err)
		return
	}

	var drink models.Drink
	if err := mc.DB.First(&drink, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	notify(mc.Events, "drinks")
	utils.RespondJSON(c, http.StatusOK, "Drink updated", drink)
}

func (mc *MenuController) SetDrinkAvailability(c *gin.Context) {
	mc.setAvailability(c, &models.Drink{}, "drinks", "Drink")
}

func (mc *MenuController) DeleteDrink(c *gin.Context) {
	mc.deleteByID(c, &models.Drink{}, "drinks", "Drink deleted")
}

// Stuffed crusts

func (mc *MenuController) GetCrusts(c *gin.Context) {
	var crusts []models.StuffedCrust
	if err := mc.DB.Order("id").Find(&crusts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of crusts", crusts)
}

func (mc *MenuController) CreateCrust(c *gin.Context) {
	var req crustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	size := trimmed(req.PizzaSize)
	if size == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrCrustSizeMissing)
		return
	}

	crust := models.StuffedCrust{PizzaSize: size, Price: req.Price.Value}
	if err := mc.DB.Create(&crust).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	notify(mc.Events, "crusts")
	utils.RespondJSON(c, http.StatusCreated, "Crust created", crust)
}

func (mc *MenuController) UpdateCrust(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req crustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	size := trimmed(req.PizzaSize)
	if size == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrCrustSizeMissing)
		return
	}

	updates := map[string]interface{}{"tamanho_pizza": *size, "valor_borda_recheada": req.Price.Value}
	if err := updateRow(mc.DB, &models.StuffedCrust{}, updates, "id = ?", id); err != nil {
		respondDBError(c, err)
		return
	}

	notify(mc.Events, "crusts")
	utils.RespondJSON(c, http.StatusOK, "Crust updated", nil)
}

func (mc *MenuController) DeleteCrust(c *gin.Context) {
	mc.deleteByID(c, &models.StuffedCrust{}, "crusts", "Crust deleted")
}

func (mc *MenuController) setAvailability(c *gin.Context, model interface{}, resource, label string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := updateRow(mc.DB, model, map[string]interface{}{"disponivel": *req.Available}, "id = ?", id); err != nil {
		respondDBError(c, err)
		return
	}

	notify(mc.Events, resource)
	utils.RespondJSON(c, http.StatusOK, label+" availability updated", gin.H{"id": id, "available": *req.Available})
}

func (mc *MenuController) deleteByID(c *gin.Context, model interface{}, resource, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := checkAffected(mc.DB.Delete(model, id)); err != nil {
		respondDBError(c, err)
		return
	}

	notify(mc.Events, resource)
	utils.RespondJSON(c, http.StatusOK, message, nil)
}
