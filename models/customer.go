package models

// Customer is the checkout contact block. Phone doubles as the natural key
// for the remote Users sheet (same phone, same user id).
type Customer struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasLocation reports whether the customer shared geolocation.
func (c Customer) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
