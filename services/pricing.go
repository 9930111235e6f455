package services

import (
	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// Delivery pricing rules. Thresholds are static per-restaurant data, not
// runtime configuration; edit here when a restaurant's deal changes.
const BaseDeliveryFee = 30.0

var freeDeliveryThresholds = map[string]float64{
	"cupsncrumbs":  100,
	"bandhu-hotel": 350,
}

// Promotional override: the single 195-rupee price point bills at 180.
const (
	promoListedPrice = 195.0
	promoBilledPrice = 180.0
)

// TaxRate is currently 0% GST. Kept as a variable: the totals math must stay
// correct the day it becomes nonzero.
var TaxRate = 0.0

// UnitPrice is the billed price for one unit of an item, promotional
// override applied.
func UnitPrice(item models.CartItem) float64 {
	if item.Price == promoListedPrice {
		return promoBilledPrice
	}
	return item.Price
}

// DeliveryFee computes the fee for a cart's restaurant and subtotal. Empty
// carts ship nothing and pay nothing.
func DeliveryFee(restaurantID string, subtotal float64, itemCount int) float64 {
	if itemCount == 0 {
		return 0
	}
	if threshold, ok := freeDeliveryThresholds[restaurantID]; ok && subtotal >= threshold {
		return 0
	}
	return BaseDeliveryFee
}

// CalculateCartTotals returns a copy of the cart with subtotal, tax, delivery
// fee and total recomputed from its items. Pure; no side effects.
//
// Rounding contract: subtotal is rounded before the fee threshold check and
// before summing, and the total is rounded again independently. This matches
// the reference storefront's arithmetic exactly.
func CalculateCartTotals(cart models.Cart) models.Cart {
	subtotal := 0.0
	for _, item := range cart.Items {
		subtotal += UnitPrice(item) * float64(item.Quantity)
	}
	subtotal = utils.Round2(subtotal)

	fee := DeliveryFee(cart.RestaurantID, subtotal, len(cart.Items))
	tax := subtotal * TaxRate

	cart.Subtotal = subtotal
	cart.Tax = utils.Round2(tax)
	cart.DeliveryFee = utils.Round2(fee)
	cart.Total = utils.Round2(subtotal + tax + fee)
	return cart
}

// CartPricing extracts the computed breakdown for checkout.
func CartPricing(cart models.Cart) models.Pricing {
	return models.Pricing{
		Subtotal:    cart.Subtotal,
		Tax:         cart.Tax,
		DeliveryFee: cart.DeliveryFee,
		Total:       cart.Total,
	}
}
