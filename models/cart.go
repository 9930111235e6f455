package models

import "encoding/json"

// CartItem is a menu item bound to a restaurant with a quantity.
type CartItem struct {
	MenuItem
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Quantity       int    `json:"quantity"`
}

// Cart holds the items of a single client session. RestaurantID is empty iff
// Items is empty; every item shares the cart's restaurant. Totals are derived
// values and are recomputed from Items on every load.
type Cart struct {
	Items          []CartItem `json:"items"`
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	DeliveryFee    float64    `json:"deliveryFee"`
	Total          float64    `json:"total"`
}

// EmptyCart returns the zero cart value.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems is the summed quantity across all lines.
func (c Cart) TotalItems() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// DecodeCart rebuilds a cart from a stored document. Stored documents are
// treated as untrusted: every field is coerced to its expected type and
// anything unreadable collapses to the empty cart rather than an error.
// Totals are NOT taken from storage; callers recompute them from Items.
func DecodeCart(raw []byte) Cart {
	cart := EmptyCart()
	if len(raw) == 0 {
		return cart
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cart
	}

	cart.RestaurantID = coerceString(doc["restaurantId"])
	cart.RestaurantName = coerceString(doc["restaurantName"])

	var rawItems []map[string]json.RawMessage
	if err := json.Unmarshal(doc["items"], &rawItems); err != nil {
		rawItems = nil
	}
	for _, ri := range rawItems {
		item := CartItem{
			MenuItem: MenuItem{
				ItemName:    coerceString(ri["itemName"]),
				Price:       coerceFloat(ri["price"]),
				Category:    coerceString(ri["category"]),
				VegNonVeg:   coerceString(ri["vegNonVeg"]),
				Description: coerceString(ri["description"]),
			},
			RestaurantID:   coerceString(ri["restaurantId"]),
			RestaurantName: coerceString(ri["restaurantName"]),
			Quantity:       int(coerceFloat(ri["quantity"])),
		}
		if item.ItemName == "" {
			continue
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		cart.Items = append(cart.Items, item)
	}

	// Restore the restaurant invariant for half-written documents.
	if len(cart.Items) == 0 {
		cart.RestaurantID = ""
		cart.RestaurantName = ""
	}
	return cart
}

func coerceString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func coerceFloat(raw json.RawMessage) float64 {
	if raw == nil {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	// Tolerate numbers that were stored as strings.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var f2 float64
		if err := json.Unmarshal([]byte(s), &f2); err == nil {
			return f2
		}
	}
	return 0
}
