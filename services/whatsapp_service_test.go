package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpkhazaana-eng/production-app/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderID:        "ORD-20260828-00042",
		RestaurantID:   "cupsncrumbs",
		RestaurantName: "Cups N Crumbs",
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ItemName: "Tea", Price: 20, VegNonVeg: models.VegLabel}, Quantity: 2},
			{MenuItem: models.MenuItem{ItemName: "Chicken Roll", Price: 50, VegNonVeg: models.NonVegLabel}, Quantity: 1},
		},
		Customer: models.Customer{
			Name:    "Asha Das",
			Phone:   "9876543210",
			Address: "College More, Aurangabad",
		},
		Subtotal:    90,
		Tax:         0,
		DeliveryFee: 30,
		Total:       120,
		OrderTime:   "2026-08-28 1:05 PM",
		Status:      models.OrderStatusPending,
	}
}

func TestFormatOrderMessage_Layout(t *testing.T) {
	msg := FormatOrderMessage(sampleOrder())

	assert.True(t, strings.HasPrefix(msg, "*NEW ORDER - KHAZAANA*"))
	assert.Contains(t, msg, "*Order ID:* ORD-20260828-00042")
	assert.Contains(t, msg, "*Restaurant:* Cups N Crumbs")
	assert.Contains(t, msg, "1. Tea x2 = Rs.40 [VEG]")
	assert.Contains(t, msg, "2. Chicken Roll x1 = Rs.50 [NON-VEG]")
	assert.Contains(t, msg, "- Subtotal: Rs.90")
	assert.Contains(t, msg, "- Delivery Fee: Rs.30")
	assert.Contains(t, msg, "- *Total: Rs.120*")
	assert.Contains(t, msg, "- Phone: 9876543210")
	assert.Contains(t, msg, "*Order Time:* 2026-08-28 1:05 PM")
	assert.True(t, strings.HasSuffix(msg, "Thank you for ordering with Khazaana!"))

	// No geolocation, no email: those lines stay out.
	assert.NotContains(t, msg, "*Location:*")
	assert.NotContains(t, msg, "- Email:")
}

func TestFormatOrderMessage_UntaggedItemKeepsTrailingSpace(t *testing.T) {
	order := sampleOrder()
	order.Items = []models.CartItem{
		{MenuItem: models.MenuItem{ItemName: "Mystery Box", Price: 99}, Quantity: 1},
	}

	msg := FormatOrderMessage(order)
	assert.Contains(t, msg, "1. Mystery Box x1 = Rs.99 \n")
	assert.NotContains(t, msg, "[VEG]")
}

func TestFormatOrderMessage_FreeDelivery(t *testing.T) {
	order := sampleOrder()
	order.DeliveryFee = 0

	msg := FormatOrderMessage(order)
	assert.Contains(t, msg, "- Delivery Fee: FREE")
	assert.NotContains(t, msg, "- Delivery Fee: Rs.0")
}

func TestFormatOrderMessage_OptionalSections(t *testing.T) {
	order := sampleOrder()
	lat, lng := 24.61, 88.02
	order.Customer.Email = "asha@example.com"
	order.Customer.Latitude = &lat
	order.Customer.Longitude = &lng

	msg := FormatOrderMessage(order)
	assert.Contains(t, msg, "- Email: asha@example.com")
	assert.Contains(t, msg, "*Location:* https://maps.google.com/?q=24.61,88.02")
}

func TestGenerateWhatsAppURL(t *testing.T) {
	url := GenerateWhatsAppURL(sampleOrder(), "", "918695902696")

	assert.True(t, strings.HasPrefix(url, "https://wa.me/918695902696?text="))
	// encodeURIComponent-style encoding: %20 for spaces, never '+'.
	assert.Contains(t, url, "%20")
	assert.NotContains(t, url, "+")
	assert.Contains(t, url, "ORD-20260828-00042")
}

func TestGenerateWhatsAppURL_RestaurantOverride(t *testing.T) {
	url := GenerateWhatsAppURL(sampleOrder(), "+91 86959-02696", "918695902696")
	assert.True(t, strings.HasPrefix(url, "https://wa.me/918695902696?text="), "non-digits are stripped from the override")
}
