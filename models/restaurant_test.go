package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantCatalog(t *testing.T) {
	assert.Len(t, Restaurants, 6)

	// Cups N Crumbs is pinned first and is the only featured entry.
	assert.Equal(t, "cupsncrumbs", Restaurants[0].ID)
	assert.True(t, Restaurants[0].Featured)
	for _, r := range Restaurants[1:] {
		assert.False(t, r.Featured, r.ID)
	}

	ids := make([]string, 0, len(Restaurants))
	for _, r := range Restaurants {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"cupsncrumbs", "aaviora", "arsalan", "bandhu-hotel", "bholebaba", "whitechocolate"}, ids)
}

func TestRestaurantCatalog_Entries(t *testing.T) {
	arsalan, ok := FindRestaurant("arsalan")
	assert.True(t, ok)
	assert.Equal(t, 4.7, arsalan.Rating)
	assert.Equal(t, "₹₹₹", arsalan.PriceRange)

	bandhu, ok := FindRestaurant("bandhu-hotel")
	assert.True(t, ok)
	assert.Equal(t, "Indian", bandhu.Category)
	assert.Equal(t, []string{"Indian", "Bengali"}, bandhu.Cuisine)

	bhole, ok := FindRestaurant("bholebaba")
	assert.True(t, ok)
	assert.Equal(t, "Bhole Baba", bhole.Name)
	assert.Equal(t, "Street Food", bhole.Category)
	assert.Equal(t, "₹", bhole.PriceRange)

	choco, ok := FindRestaurant("whitechocolate")
	assert.True(t, ok)
	assert.Equal(t, "White Chocolate", choco.Name)
	assert.Equal(t, 4.3, choco.Rating)

	_, ok = FindRestaurant("nope")
	assert.False(t, ok)
}
