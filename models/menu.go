package models

// Veg/Non-Veg markers as they appear in the menu sheets.
const (
	VegLabel    = "Veg"
	NonVegLabel = "Non-Veg"
)

// MenuItem is a single catalog entry. The catalog itself is owned by the
// menu-loading side; the storefront only ever receives these from the client.
type MenuItem struct {
	ItemName    string  `json:"itemName"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	VegNonVeg   string  `json:"vegNonVeg"`
	Description string  `json:"description,omitempty"`
}
