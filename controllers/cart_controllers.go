package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GetCart returns the caller's cart, totals freshly recomputed.
func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.Carts.GetCart(clientID(c))
	utils.RespondJSON(c, http.StatusOK, "Cart", cart)
}

// AddItem puts a menu item in the cart. A cart bound to another restaurant
// declines with 409 and the guard message; the cart is left untouched.
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		Item           models.MenuItem `json:"item" binding:"required"`
		RestaurantID   string          `json:"restaurant_id" binding:"required"`
		RestaurantName string          `json:"restaurant_name" binding:"required"`
		Quantity       int             `json:"quantity"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Item.ItemName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item name is required"))
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cart, err := cc.Carts.AddItem(clientID(c), body.Item, body.RestaurantID, body.RestaurantName, body.Quantity)
	if err != nil {
		var guard *services.ErrDifferentRestaurant
		if errors.As(err, &guard) {
			c.JSON(http.StatusConflict, utils.JSONResponse{
				Status:  false,
				Message: guard.Error(),
				Data:    cart,
			})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cart)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	type reqBody struct {
		Quantity int `json:"quantity"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := cc.Carts.UpdateQuantity(clientID(c), c.Param("item_name"), body.Quantity)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cart)
}

// RemoveItem deletes a line by item name.
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.Carts.RemoveItem(clientID(c), c.Param("item_name"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", cart)
}

// ClearCart empties the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	cart := cc.Carts.ClearCart(clientID(c))
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cart)
}
