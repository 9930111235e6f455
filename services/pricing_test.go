package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpkhazaana-eng/production-app/models"
)

func cartWith(restaurantID string, items ...models.CartItem) models.Cart {
	cart := models.EmptyCart()
	cart.RestaurantID = restaurantID
	cart.RestaurantName = restaurantID
	cart.Items = items
	return cart
}

func item(name string, price float64, qty int) models.CartItem {
	return models.CartItem{
		MenuItem: models.MenuItem{ItemName: name, Price: price},
		Quantity: qty,
	}
}

func TestCalculateCartTotals_TeaScenario(t *testing.T) {
	// Rs.20 tea x2 from Cups N Crumbs: below the Rs.100 threshold, so the
	// standard delivery charge applies.
	cart := CalculateCartTotals(cartWith("cupsncrumbs", item("Tea", 20, 2)))

	assert.Equal(t, 40.0, cart.Subtotal)
	assert.Equal(t, 30.0, cart.DeliveryFee)
	assert.Equal(t, 0.0, cart.Tax)
	assert.Equal(t, 70.0, cart.Total)
}

func TestCalculateCartTotals_FreeDeliveryCupsNCrumbs(t *testing.T) {
	cart := CalculateCartTotals(cartWith("cupsncrumbs", item("Cake", 150, 1)))

	assert.Equal(t, 150.0, cart.Subtotal)
	assert.Equal(t, 0.0, cart.DeliveryFee)
	assert.Equal(t, 150.0, cart.Total)
}

func TestCalculateCartTotals_BandhuHotelThreshold(t *testing.T) {
	below := CalculateCartTotals(cartWith("bandhu-hotel", item("Thali", 120, 2)))
	assert.Equal(t, 30.0, below.DeliveryFee, "Rs.240 is below the Rs.350 threshold")

	atThreshold := CalculateCartTotals(cartWith("bandhu-hotel", item("Thali", 175, 2)))
	assert.Equal(t, 0.0, atThreshold.DeliveryFee)
}

func TestCalculateCartTotals_OtherRestaurantAlwaysPays(t *testing.T) {
	cart := CalculateCartTotals(cartWith("arsalan", item("Biryani", 500, 2)))
	assert.Equal(t, 30.0, cart.DeliveryFee)
}

func TestCalculateCartTotals_EmptyCart(t *testing.T) {
	cart := CalculateCartTotals(models.EmptyCart())

	assert.Equal(t, 0.0, cart.Subtotal)
	assert.Equal(t, 0.0, cart.DeliveryFee)
	assert.Equal(t, 0.0, cart.Total)
}

func TestUnitPrice_PromoOverride(t *testing.T) {
	assert.Equal(t, 180.0, UnitPrice(item("Combo", 195, 1)))
	assert.Equal(t, 194.0, UnitPrice(item("Almost", 194, 1)))
	assert.Equal(t, 196.0, UnitPrice(item("Above", 196, 1)))
}

func TestCalculateCartTotals_PromoAppliesToSubtotal(t *testing.T) {
	cart := CalculateCartTotals(cartWith("aaviora", item("Combo", 195, 1)))

	assert.Equal(t, 180.0, cart.Subtotal, "Rs.195 items bill at Rs.180")
	assert.Equal(t, 210.0, cart.Total)
}

func TestCalculateCartTotals_SubtotalIsSumOverItems(t *testing.T) {
	cart := CalculateCartTotals(cartWith("aaviora",
		item("Noodles", 90, 3),
		item("Combo", 195, 2),
		item("Soup", 55.5, 1),
	))

	// 270 + 360 + 55.5
	assert.Equal(t, 685.5, cart.Subtotal)
	assert.Equal(t, 715.5, cart.Total)
}

func TestCalculateCartTotals_Pure(t *testing.T) {
	in := cartWith("cupsncrumbs", item("Tea", 20, 2))
	_ = CalculateCartTotals(in)

	assert.Equal(t, 0.0, in.Total, "input cart must not be mutated")
}
