package router

import (
	"github.com/gin-gonic/gin"

	"github.com/helpkhazaana-eng/production-app/controllers"
	"github.com/helpkhazaana-eng/production-app/middlewares"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/storage"
)

// SetupRouter wires the storefront API around the given document store and
// sheet services.
func SetupRouter(store storage.Store, sheets *services.SheetsService, monitor *services.SheetsMonitor) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	carts := services.NewCartService(store)
	history := services.NewOrderHistoryService(store)

	restaurantCtrl := controllers.NewRestaurantController()
	cartCtrl := controllers.NewCartController(carts)
	orderCtrl := controllers.NewOrderController(carts, history, sheets)
	adminCtrl := controllers.NewAdminController(sheets, monitor)
	streamCtrl := controllers.NewStreamController()

	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)

	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items/:item_name", cartCtrl.UpdateQuantity)
	r.DELETE("/cart/items/:item_name", cartCtrl.RemoveItem)
	r.DELETE("/cart", cartCtrl.ClearCart)

	r.POST("/checkout", orderCtrl.Checkout)
	r.GET("/orders/history", orderCtrl.GetHistory)

	r.GET("/ws", streamCtrl.Stream)

	admin := r.Group("/admin")
	{
		admin.POST("/login", middlewares.NewStrictRateLimiter(), adminCtrl.Login)

		protected := admin.Group("")
		protected.Use(middlewares.AdminAuth())
		protected.GET("/health", adminCtrl.Health)
		protected.GET("/config", adminCtrl.Config)
	}

	return r
}
