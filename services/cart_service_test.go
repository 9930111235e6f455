package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/storage"
)

const testClient = "client-1"

func newTestCartService() (*CartService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewCartService(store), store
}

func menuItem(name string, price float64) models.MenuItem {
	return models.MenuItem{ItemName: name, Price: price, Category: "Snacks", VegNonVeg: models.VegLabel}
}

func TestAddItem_NewAndIncrement(t *testing.T) {
	svc, _ := newTestCartService()

	cart, err := svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "cupsncrumbs", cart.RestaurantID)

	// Same item name increments the existing line.
	cart, err = svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 100.0, cart.Subtotal)
}

func TestAddItem_QuantitySumsAcrossCalls(t *testing.T) {
	svc, _ := newTestCartService()

	quantities := []int{1, 4, 2, 3}
	total := 0
	for _, q := range quantities {
		total += q
		_, err := svc.AddItem(testClient, menuItem("Samosa", 15), "cupsncrumbs", "Cups N Crumbs", q)
		assert.NoError(t, err)
	}

	cart := svc.GetCart(testClient)
	assert.Equal(t, total, cart.Items[0].Quantity)
	assert.Equal(t, 15.0*float64(total), cart.Subtotal)
}

func TestAddItem_CrossRestaurantGuard(t *testing.T) {
	svc, _ := newTestCartService()

	before, err := svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 1)
	assert.NoError(t, err)

	after, err := svc.AddItem(testClient, menuItem("Biryani", 180), "arsalan", "Arsalan", 1)
	var guard *ErrDifferentRestaurant
	assert.ErrorAs(t, err, &guard)
	assert.Contains(t, guard.Error(), "Cups N Crumbs")
	assert.Contains(t, guard.Error(), "Arsalan")

	// Cart unchanged, in memory and in storage.
	assert.Equal(t, before, after)
	assert.Equal(t, before, svc.GetCart(testClient))
}

func TestRemoveItem_EmptyCartReleasesRestaurant(t *testing.T) {
	svc, _ := newTestCartService()

	svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 1)
	cart, err := svc.RemoveItem(testClient, "Tea")
	assert.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Equal(t, "", cart.RestaurantID)
	assert.Equal(t, "", cart.RestaurantName)
	assert.Equal(t, 0.0, cart.Total)
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := newTestCartService()
	svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 1)

	cart, err := svc.UpdateQuantity(testClient, "Tea", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 80.0, cart.Subtotal)

	// Zero or negative delegates to removal.
	cart, err = svc.UpdateQuantity(testClient, "Tea", 0)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "", cart.RestaurantID)
}

func TestClearCart(t *testing.T) {
	svc, _ := newTestCartService()
	svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 2)

	cart := svc.ClearCart(testClient)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	assert.Empty(t, svc.GetCart(testClient).Items)
}

func TestGetCart_RoundTripRecomputesTotals(t *testing.T) {
	svc, store := newTestCartService()
	saved, _ := svc.AddItem(testClient, menuItem("Tea", 20), "cupsncrumbs", "Cups N Crumbs", 2)

	// Tamper with the stored totals; items are the only source of truth.
	raw, err := store.Get("cart:" + testClient)
	assert.NoError(t, err)
	tampered := strings.Replace(string(raw), `"total":70`, `"total":9999`, 1)
	assert.NoError(t, store.Set("cart:"+testClient, []byte(tampered)))

	loaded := svc.GetCart(testClient)
	assert.Equal(t, saved.Items, loaded.Items)
	assert.Equal(t, 70.0, loaded.Total)
}

func TestGetCart_CorruptedDocument(t *testing.T) {
	svc, store := newTestCartService()
	assert.NoError(t, store.Set("cart:"+testClient, []byte("{not json")))

	cart := svc.GetCart(testClient)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "", cart.RestaurantID)
}

func TestGetCart_PartiallyShapedDocument(t *testing.T) {
	svc, store := newTestCartService()
	doc := `{"items":[{"itemName":"Tea","price":"20","quantity":"2"},{"price":10}],"restaurantId":123,"subtotal":"junk"}`
	assert.NoError(t, store.Set("cart:"+testClient, []byte(doc)))

	cart := svc.GetCart(testClient)
	// The nameless item is dropped, string numbers are coerced, and the
	// non-string restaurant id collapses to empty.
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Tea", cart.Items[0].ItemName)
	assert.Equal(t, 20.0, cart.Items[0].Price)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "", cart.RestaurantID)
}
