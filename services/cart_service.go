package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helpkhazaana-eng/production-app/hub"
	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/storage"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// ErrDifferentRestaurant is the single-restaurant guard. It declines the
// operation without touching the cart; callers surface Message to the user.
type ErrDifferentRestaurant struct {
	Current   string
	Attempted string
}

func (e *ErrDifferentRestaurant) Error() string {
	return fmt.Sprintf("Your cart contains items from %s. Please clear your cart to order from %s.", e.Current, e.Attempted)
}

// CartService owns the persisted cart document of each client. All cart reads
// and writes go through it; nothing else touches the cart keys.
type CartService struct {
	store storage.Store
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

func cartKey(clientID string) string {
	return "cart:" + clientID
}

// GetCart loads a client's cart, tolerating missing or corrupted documents,
// and recomputes totals from the items. Stored totals are only a cache.
func (s *CartService) GetCart(clientID string) models.Cart {
	raw, err := s.store.Get(cartKey(clientID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			utils.ErrorLogger.Printf("cart: load for %s: %v", clientID, err)
		}
		return CalculateCartTotals(models.EmptyCart())
	}
	return CalculateCartTotals(models.DecodeCart(raw))
}

// AddItem adds qty of item to the client's cart, or increments the existing
// line matched by item name. Carts are bound to one restaurant: adding from a
// second restaurant returns ErrDifferentRestaurant and the cart unchanged.
func (s *CartService) AddItem(clientID string, item models.MenuItem, restaurantID, restaurantName string, qty int) (models.Cart, error) {
	if qty < 1 {
		qty = 1
	}
	cart := s.GetCart(clientID)

	if cart.RestaurantID != "" && cart.RestaurantID != restaurantID {
		utils.InfoLogger.Printf("cart: declined cross-restaurant add for %s (cart=%s, attempted=%s)",
			clientID, cart.RestaurantName, restaurantName)
		return cart, &ErrDifferentRestaurant{Current: cart.RestaurantName, Attempted: restaurantName}
	}

	if cart.RestaurantID == "" {
		cart.RestaurantID = restaurantID
		cart.RestaurantName = restaurantName
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ItemName == item.ItemName {
			cart.Items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			MenuItem:       item,
			RestaurantID:   restaurantID,
			RestaurantName: restaurantName,
			Quantity:       qty,
		})
	}

	cart = CalculateCartTotals(cart)
	s.save(clientID, cart)
	utils.InfoLogger.Printf("cart: added %q x%d for %s (%s)", item.ItemName, qty, clientID, restaurantName)
	return cart, nil
}

// RemoveItem drops the line matched by name. Emptying the cart releases the
// restaurant binding.
func (s *CartService) RemoveItem(clientID, itemName string) (models.Cart, error) {
	cart := s.GetCart(clientID)

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ItemName != itemName {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		cart.RestaurantID = ""
		cart.RestaurantName = ""
	}

	cart = CalculateCartTotals(cart)
	s.save(clientID, cart)
	return cart, nil
}

// UpdateQuantity sets a line's quantity in place; qty <= 0 removes the line.
func (s *CartService) UpdateQuantity(clientID, itemName string, qty int) (models.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(clientID, itemName)
	}

	cart := s.GetCart(clientID)
	for i := range cart.Items {
		if cart.Items[i].ItemName == itemName {
			cart.Items[i].Quantity = qty
			break
		}
	}

	cart = CalculateCartTotals(cart)
	s.save(clientID, cart)
	return cart, nil
}

// ClearCart resets the client's cart to the empty value.
func (s *CartService) ClearCart(clientID string) models.Cart {
	cart := CalculateCartTotals(models.EmptyCart())
	s.save(clientID, cart)
	return cart
}

// save persists the cart and notifies the client's other surfaces. A failed
// write is logged, not returned: the in-memory cart the caller got back is
// still correct, and the next mutation retries the write.
func (s *CartService) save(clientID string, cart models.Cart) {
	raw, err := json.Marshal(cart)
	if err != nil {
		utils.ErrorLogger.Printf("cart: marshal for %s: %v", clientID, err)
		return
	}
	if err := s.store.Set(cartKey(clientID), raw); err != nil {
		utils.ErrorLogger.Printf("cart: persist for %s: %v", clientID, err)
		return
	}
	hub.BroadcastCartUpdate(clientID, cart)
}
