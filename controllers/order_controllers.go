package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helpkhazaana-eng/production-app/hub"
	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/utils"
)

type OrderController struct {
	Carts   *services.CartService
	History *services.OrderHistoryService
	Sheets  *services.SheetsService
}

func NewOrderController(carts *services.CartService, history *services.OrderHistoryService, sheets *services.SheetsService) *OrderController {
	return &OrderController{Carts: carts, History: history, Sheets: sheets}
}

type checkoutResponse struct {
	OrderID     string `json:"order_id"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// Checkout submits the caller's cart to the spreadsheet backend and returns
// the WhatsApp handoff link. The order id is returned even when the sink
// write fails so the customer can retry with a reference. The cart is left
// as-is after a successful order; clearing it is the shopper's call.
func (oc *OrderController) Checkout(c *gin.Context) {
	type reqBody struct {
		Customer      models.Customer `json:"customer" binding:"required"`
		TermsAccepted bool            `json:"terms_accepted"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Customer.Name == "" || body.Customer.Phone == "" || body.Customer.Address == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, phone and address are required"))
		return
	}

	id := clientID(c)
	cart := oc.Carts.GetCart(id)
	if cart.IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	pricing := services.CartPricing(cart)
	result := oc.Sheets.SubmitOrder(cart.RestaurantName, cart.Items, body.Customer, pricing, body.TermsAccepted)

	order := models.Order{
		OrderID:        result.OrderID,
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Items:          cart.Items,
		Customer:       body.Customer,
		Subtotal:       pricing.Subtotal,
		Tax:            pricing.Tax,
		DeliveryFee:    pricing.DeliveryFee,
		Total:          pricing.Total,
		OrderTime:      utils.FormatSheetTime(time.Now()),
		Status:         models.OrderStatusPending,
	}

	if !result.Success {
		c.JSON(http.StatusBadGateway, utils.JSONResponse{
			Status:  false,
			Message: result.Message,
			Data:    checkoutResponse{OrderID: result.OrderID},
		})
		return
	}

	if err := oc.History.SaveOrder(id, order); err != nil {
		// History is a local convenience; the order itself went through.
		utils.ErrorLogger.Printf("checkout: save history for %s: %v", id, err)
	}
	hub.BroadcastOrderPlaced(id, order)

	// All restaurants hand off to the platform number at checkout.
	waURL := services.GenerateWhatsAppURL(order, "", oc.Sheets.WhatsAppNumber())

	utils.RespondJSON(c, http.StatusCreated, result.Message, checkoutResponse{
		OrderID:     result.OrderID,
		WhatsAppURL: waURL,
	})
}

// GetHistory lists the caller's past orders, newest first.
func (oc *OrderController) GetHistory(c *gin.Context) {
	orders := oc.History.GetHistory(clientID(c))
	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}
