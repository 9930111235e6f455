package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/utils"
)

type RestaurantController struct{}

func NewRestaurantController() *RestaurantController {
	return &RestaurantController{}
}

type restaurantView struct {
	models.Restaurant
	IsOpen    bool   `json:"is_open"`
	Countdown string `json:"countdown"`
}

// GetAllRestaurants lists the catalog with live open/closed status.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	status := services.StorefrontStatus(time.Now())

	views := make([]restaurantView, 0, len(models.Restaurants))
	for _, r := range models.Restaurants {
		views = append(views, restaurantView{
			Restaurant: r,
			IsOpen:     status.IsOpen,
			Countdown:  status.Countdown,
		})
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", views)
}

// GetRestaurantByID returns a single catalog entry.
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id := c.Param("restaurant_id")
	r, ok := models.FindRestaurant(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("restaurant %q not found", id))
		return
	}

	status := services.StorefrontStatus(time.Now())
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurantView{
		Restaurant: r,
		IsOpen:     status.IsOpen,
		Countdown:  status.Countdown,
	})
}
