package models

// Shared storefront timings (IST). Every restaurant currently runs the same
// hours; the opening-hours service reads these.
const (
	OpensAtHour  = 9
	ClosesAtHour = 21
)

// Platform contact numbers, country-code prefixed where WhatsApp needs them.
const (
	KhazaanaPhone    = "8695902696"
	KhazaanaWhatsApp = "918695902696"
)

// Restaurant is a static catalog entry.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	WhatsApp   string   `json:"whatsapp"`
	Category   string   `json:"category"`
	Featured   bool     `json:"featured"`
	Rating     float64  `json:"rating"`
	Cuisine    []string `json:"cuisine"`
	PriceRange string   `json:"priceRange"`
	CostForTwo int      `json:"costForTwo"`
}

const collegeMoreAddress = "College More, near DNC College, Aurangabad, Suti, West Bengal 742201"

// Restaurants is the catalog, with Cups N Crumbs pinned first.
var Restaurants = []Restaurant{
	{
		ID:         "cupsncrumbs",
		Name:       "Cups N Crumbs",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Cafe",
		Featured:   true,
		Rating:     4.4,
		Cuisine:    []string{"Cafe", "Bakery"},
		PriceRange: "₹₹",
		CostForTwo: 200,
	},
	{
		ID:         "aaviora",
		Name:       "Aaviora",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Chinese",
		Rating:     4.5,
		Cuisine:    []string{"Chinese", "Asian"},
		PriceRange: "₹₹",
		CostForTwo: 200,
	},
	{
		ID:         "arsalan",
		Name:       "Arsalan",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Biryani",
		Rating:     4.7,
		Cuisine:    []string{"Biryani", "Mughlai"},
		PriceRange: "₹₹₹",
		CostForTwo: 200,
	},
	{
		ID:         "bandhu-hotel",
		Name:       "Bandhu Hotel",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Indian",
		Rating:     4.2,
		Cuisine:    []string{"Indian", "Bengali"},
		PriceRange: "₹₹",
		CostForTwo: 200,
	},
	{
		ID:         "bholebaba",
		Name:       "Bhole Baba",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Street Food",
		Rating:     4.0,
		Cuisine:    []string{"Street Food", "Snacks"},
		PriceRange: "₹",
		CostForTwo: 200,
	},
	{
		ID:         "whitechocolate",
		Name:       "White Chocolate",
		Address:    collegeMoreAddress,
		Phone:      KhazaanaPhone,
		WhatsApp:   KhazaanaPhone,
		Category:   "Desserts",
		Rating:     4.3,
		Cuisine:    []string{"Desserts", "Bakery"},
		PriceRange: "₹₹",
		CostForTwo: 200,
	},
}

// FindRestaurant looks up a catalog entry by id.
func FindRestaurant(id string) (Restaurant, bool) {
	for _, r := range Restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}
