package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// FormatOrderMessage renders the order as the WhatsApp handoff text. The
// fulfiller reads these by eye, so line order and labels are a fixed
// contract; do not reorder or relabel without telling the kitchen.
func FormatOrderMessage(order models.Order) string {
	var itemLines []string
	for i, item := range order.Items {
		// The amount always carries a trailing space; untagged items keep it.
		line := fmt.Sprintf("%d. %s x%d = Rs.%s ", i+1, item.ItemName, item.Quantity,
			utils.FormatAmount(item.Price*float64(item.Quantity)))
		switch item.VegNonVeg {
		case models.VegLabel:
			line += "[VEG]"
		case models.NonVegLabel:
			line += "[NON-VEG]"
		}
		itemLines = append(itemLines, line)
	}

	deliveryFeeText := "Rs." + utils.FormatAmount(order.DeliveryFee)
	if order.DeliveryFee == 0 {
		deliveryFeeText = "FREE"
	}

	emailLine := ""
	if order.Customer.Email != "" {
		emailLine = "\n- Email: " + order.Customer.Email
	}

	locationSection := ""
	if order.Customer.HasLocation() {
		locationSection = fmt.Sprintf("\n*Location:* https://maps.google.com/?q=%v,%v",
			*order.Customer.Latitude, *order.Customer.Longitude)
	}

	return fmt.Sprintf(`*NEW ORDER - KHAZAANA*

*Order ID:* %s
*Restaurant:* %s

*Items Ordered:*
%s

*Payment Details:*
- Subtotal: Rs.%s
- Tax: Rs.%s
- Delivery Fee: %s
- *Total: Rs.%s*

*Customer Details:*
- Name: %s
- Phone: %s%s

*Delivery Address:*
%s%s

*Order Time:* %s

---
Thank you for ordering with Khazaana!`,
		order.OrderID,
		order.RestaurantName,
		strings.Join(itemLines, "\n"),
		utils.FormatAmount(order.Subtotal),
		utils.FormatAmount(order.Tax),
		deliveryFeeText,
		utils.FormatAmount(order.Total),
		order.Customer.Name,
		order.Customer.Phone,
		emailLine,
		order.Customer.Address,
		locationSection,
		order.OrderTime,
	)
}

// GenerateWhatsAppURL builds the wa.me deep link carrying the order message.
// target overrides the platform-wide number (already country-code prefixed);
// non-digits are stripped either way.
func GenerateWhatsAppURL(order models.Order, target, defaultNumber string) string {
	number := target
	if number == "" {
		number = defaultNumber
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		utils.DigitsOnly(number), percentEncode(FormatOrderMessage(order)))
}

// percentEncode escapes like encodeURIComponent: spaces become %20, not +.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
