package services

import (
	"encoding/json"
	"errors"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/storage"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// MaxOrderHistory caps the per-client history log. Oldest entries are
// evicted first; the newest order is always at index 0.
const MaxOrderHistory = 50

// OrderHistoryService keeps the bounded per-client order log.
type OrderHistoryService struct {
	store storage.Store
}

func NewOrderHistoryService(store storage.Store) *OrderHistoryService {
	return &OrderHistoryService{store: store}
}

func historyKey(clientID string) string {
	return "orders:" + clientID
}

// GetHistory returns the client's orders, newest first. Corrupted documents
// read as empty.
func (s *OrderHistoryService) GetHistory(clientID string) []models.Order {
	raw, err := s.store.Get(historyKey(clientID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			utils.ErrorLogger.Printf("history: load for %s: %v", clientID, err)
		}
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		utils.ErrorLogger.Printf("history: decode for %s: %v", clientID, err)
		return []models.Order{}
	}
	return orders
}

// SaveOrder prepends the order and trims the log to MaxOrderHistory entries.
func (s *OrderHistoryService) SaveOrder(clientID string, order models.Order) error {
	orders := append([]models.Order{order}, s.GetHistory(clientID)...)
	if len(orders) > MaxOrderHistory {
		orders = orders[:MaxOrderHistory]
	}

	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.store.Set(historyKey(clientID), raw)
}
