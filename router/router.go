package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/config"
	"github.com/goodzap/backoffice/controllers"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/middlewares"
	"github.com/goodzap/backoffice/utils"
	"gorm.io/gorm"
)

// SetupRouter -> events receives every invalidation; h serves the /ws endpoint.
func SetupRouter(db *gorm.DB, cfg *config.Config, h *hub.Hub, events hub.Publisher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}

	companyCtrl := controllers.NewCompanyController(db, events)
	hoursCtrl := controllers.NewHoursController(db, events)
	menuCtrl := controllers.NewMenuController(db, events)
	campaignCtrl := controllers.NewCampaignController(db, events)
	settingsCtrl := controllers.NewSettingsController(db, events)
	freightCtrl := controllers.NewFreightController(db, events)
	customerCtrl := controllers.NewCustomerController(db)
	orderCtrl := controllers.NewOrderController(db, cfg.Location)
	dashboardCtrl := controllers.NewDashboardController(db, cfg.Location)
	metricsCtrl := controllers.NewMetricsController(db, cfg.Location)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "ok", gin.H{"ws_clients": h.Count()})
	})

	r.GET("/ws", controllers.WebSocketHandler(h, middlewares.ParseOrigins(cfg.CORSOrigin)))

	admin := r.Group("/admin")

	// COMPANY
	admin.GET("/company", companyCtrl.GetCompany)
	admin.PUT("/company", companyCtrl.SaveCompany)

	// BUSINESS HOURS
	admin.GET("/hours", hoursCtrl.GetBusinessHours)
	admin.POST("/hours/init", hoursCtrl.InitBusinessHours)
	admin.PUT("/hours/:weekday", hoursCtrl.UpdateBusinessHour)
	admin.PATCH("/hours/:weekday/active", hoursCtrl.SetBusinessHourActive)

	admin.GET("/extra-hours", hoursCtrl.GetExtraHours)
	admin.POST("/extra-hours", hoursCtrl.CreateExtraHour)
	admin.PATCH("/extra-hours/:id/active", hoursCtrl.SetExtraHourActive)
	admin.DELETE("/extra-hours/:id", hoursCtrl.DeleteExtraHour)

	// MENU
	admin.GET("/menu", menuCtrl.GetMenu)
	menu := admin.Group("/menu")
	{
		menu.GET("/pizzas", menuCtrl.GetPizzas)
		menu.POST("/pizzas", menuCtrl.CreatePizza)
		menu.PUT("/pizzas/:id", menuCtrl.UpdatePizza)
		menu.PATCH("/pizzas/:id/availability", menuCtrl.SetPizzaAvailability)
		menu.DELETE("/pizzas/:id", menuCtrl.DeletePizza)

		menu.GET("/drinks", menuCtrl.GetDrinks)
		menu.POST("/drinks", menuCtrl.CreateDrink)
		menu.PUT("/drinks/:id", menuCtrl.UpdateDrink)
		menu.PATCH("/drinks/:id/availability", menuCtrl.SetDrinkAvailability)
		menu.DELETE("/drinks/:id", menuCtrl.DeleteDrink)

		menu.GET("/crusts", menuCtrl.GetCrusts)
		menu.POST("/crusts", menuCtrl.CreateCrust)
		menu.PUT("/crusts/:id", menuCtrl.UpdateCrust)
		menu.DELETE("/crusts/:id", menuCtrl.DeleteCrust)
	}

	// CAMPAIGNS
	campaigns := admin.Group("/campaigns")
	{
		campaigns.GET("/promotions", campaignCtrl.GetPromotions)
		campaigns.POST("/promotions", campaignCtrl.CreatePromotion)
		campaigns.PATCH("/promotions/:id/active", campaignCtrl.SetPromotionActive)
		campaigns.DELETE("/promotions/:id", campaignCtrl.DeletePromotion)

		campaigns.GET("/birthday", campaignCtrl.GetBirthdayCampaign)
		campaigns.PUT("/birthday", campaignCtrl.SaveBirthdayCampaign)
		campaigns.GET("/recovery", campaignCtrl.GetRecoveryCampaign)
		campaigns.PUT("/recovery", campaignCtrl.SaveRecoveryCampaign)
	}

	// SETTINGS
	admin.GET("/settings", settingsCtrl.GetSettings)
	admin.PUT("/settings", settingsCtrl.SaveSettings)
	settings := admin.Group("/settings")
	{
		settings.GET("/greetings", settingsCtrl.GetGreetings)
		settings.POST("/greetings", settingsCtrl.CreateGreeting)
		settings.PATCH("/greetings/:id/active", settingsCtrl.SetGreetingActive)
		settings.DELETE("/greetings/:id", settingsCtrl.DeleteGreeting)

		settings.GET("/admin-phones", settingsCtrl.GetAdminPhones)
		settings.POST("/admin-phones", settingsCtrl.CreateAdminPhone)
		settings.PATCH("/admin-phones/:id/active", settingsCtrl.SetAdminPhoneActive)
		settings.DELETE("/admin-phones/:id", settingsCtrl.DeleteAdminPhone)

		settings.GET("/special-numbers", settingsCtrl.GetSpecialNumbers)
		settings.POST("/special-numbers", settingsCtrl.CreateSpecialNumber)
		settings.DELETE("/special-numbers/:id", settingsCtrl.DeleteSpecialNumber)
	}

	// FREIGHT BANDS
	admin.GET("/freight-bands", freightCtrl.GetBands)
	admin.POST("/freight-bands", freightCtrl.CreateBand)
	admin.GET("/freight-bands/quote", freightCtrl.QuoteFreight)
	admin.DELETE("/freight-bands/:id", freightCtrl.DeleteBand)

	// CUSTOMERS
	admin.GET("/customers", customerCtrl.GetCustomers)
	admin.GET("/customers/:id", customerCtrl.GetCustomerByID)

	// ORDERS
	admin.GET("/orders", orderCtrl.GetOrders)
	admin.GET("/orders/export.xlsx", middlewares.DocumentLogger("orders spreadsheet"), orderCtrl.ExportOrders)
	admin.GET("/orders/:id", orderCtrl.GetOrderByID)
	admin.GET("/orders/:id/ticket.pdf", middlewares.DocumentLogger("order ticket"), orderCtrl.GetOrderTicket)

	// DASHBOARD & REPORTS
	admin.GET("/dashboard", dashboardCtrl.GetDashboard)
	admin.GET("/reports", dashboardCtrl.GetReports)

	// SALES METRICS
	admin.GET("/metrics", metricsCtrl.GetMetrics)
	admin.GET("/metrics/chart.png", middlewares.DocumentLogger("sales chart"), metricsCtrl.GetMetricsChart)
	admin.GET("/metrics/export.xlsx", middlewares.DocumentLogger("ranking spreadsheet"), metricsCtrl.ExportMetrics)

	return r
}
