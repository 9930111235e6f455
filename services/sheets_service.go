package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/utils"
)

// SheetsConfig holds the Apps Script web-app endpoint settings.
type SheetsConfig struct {
	ScriptURL      string
	WhatsAppNumber string
	MaxRetries     int
	RetryDelay     time.Duration
	Timeout        time.Duration
}

// SheetsService talks to the spreadsheet backend: addOrder on the Orders
// sheet and addOrUpdateUser on the Users sheet. The sheet's own bots handle
// everything past the appended row (invoices, status changes).
type SheetsService struct {
	config     *SheetsConfig
	httpClient *http.Client
}

var (
	sheetsService *SheetsService
	sheetsOnce    sync.Once
)

// GetSheetsService returns the singleton configured from the environment.
func GetSheetsService() *SheetsService {
	sheetsOnce.Do(func() {
		scriptURL := os.Getenv("SHEETS_SCRIPT_URL")
		whatsapp := os.Getenv("KHAZAANA_WHATSAPP")
		if whatsapp == "" {
			whatsapp = models.KhazaanaWhatsApp
		}
		sheetsService = NewSheetsService(&SheetsConfig{
			ScriptURL:      scriptURL,
			WhatsAppNumber: whatsapp,
			MaxRetries:     3,
			RetryDelay:     time.Second,
			Timeout:        30 * time.Second,
		})
	})
	return sheetsService
}

// NewSheetsService builds a service around an explicit config; tests point
// ScriptURL at an httptest server.
func NewSheetsService(cfg *SheetsConfig) *SheetsService {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SheetsService{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Config exposes a read-only snapshot for the ops endpoint.
func (ss *SheetsService) Config() SheetsConfig {
	return *ss.config
}

// ValidateConfig checks the settings needed for live submission.
func (ss *SheetsService) ValidateConfig() error {
	if ss.config.ScriptURL == "" {
		return fmt.Errorf("SHEETS_SCRIPT_URL is not set")
	}
	if ss.config.WhatsAppNumber == "" {
		return fmt.Errorf("KHAZAANA_WHATSAPP is not set")
	}
	return nil
}

// WhatsAppNumber is the platform-wide handoff address.
func (ss *SheetsService) WhatsAppNumber() string {
	return ss.config.WhatsAppNumber
}

// SubmitOrder runs the checkout pipeline:
//
//  1. assign order and user ids,
//  2. upsert the customer profile in the background (best effort, never
//     blocks or fails the order),
//  3. append the order row, which is the critical path.
//
// Transport errors come back as a failed result, never as a panic or a bare
// error; the order id is always present so the customer can retry with a
// reference.
func (ss *SheetsService) SubmitOrder(restaurantName string, items []models.CartItem, customer models.Customer, pricing models.Pricing, termsAccepted bool) models.OrderSubmissionResult {
	orderID := utils.GenerateOrderID()
	userID := utils.GenerateUserID(customer.Phone)

	go func() {
		if err := ss.SaveUser(customer); err != nil {
			utils.InfoLogger.Printf("sheets: user save failed but continuing with order %s: %v", orderID, err)
		}
	}()

	payload, err := BuildOrderPayload(orderID, userID, restaurantName, items, customer, pricing, termsAccepted)
	if err != nil {
		utils.ErrorLogger.Printf("sheets: build payload for %s: %v", orderID, err)
		return models.OrderSubmissionResult{OrderID: orderID, Message: "Failed to prepare order"}
	}

	resp, err := ss.postPayload(payload)
	if err != nil {
		utils.ErrorLogger.Printf("sheets: submit order %s: %v", orderID, err)
		return models.OrderSubmissionResult{OrderID: orderID, Message: "Failed to save order"}
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg == "" {
			msg = "Failed to save order"
		}
		return models.OrderSubmissionResult{OrderID: orderID, Message: msg}
	}

	utils.InfoLogger.Printf("sheets: order %s saved", orderID)
	return models.OrderSubmissionResult{Success: true, OrderID: orderID, Message: "Order saved successfully"}
}

// SaveUser upserts the customer row in the Users sheet, keyed by USR-<phone>.
func (ss *SheetsService) SaveUser(customer models.Customer) error {
	now := utils.FormatSheetTime(time.Now())
	payload := models.SheetUserPayload{
		SheetName: "Users",
		Action:    "addOrUpdateUser",
		Data: models.SheetUserData{
			UserID:      utils.GenerateUserID(customer.Phone),
			Name:        customer.Name,
			Phone:       customer.Phone,
			Email:       customer.Email,
			Address:     customer.Address,
			Lat:         floatOrZero(customer.Latitude),
			Long:        floatOrZero(customer.Longitude),
			CreatedAt:   now,
			TotalOrders: 1,
			LastOrderAt: now,
		},
	}

	resp, err := ss.postPayload(payload)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("sheet rejected user: %s", firstNonEmpty(resp.Error, resp.Message))
	}
	return nil
}

// BuildOrderPayload assembles the 24-column Orders row.
func BuildOrderPayload(orderID, userID, restaurantName string, items []models.CartItem, customer models.Customer, pricing models.Pricing, termsAccepted bool) (models.SheetOrderPayload, error) {
	sheetItems := make([]models.SheetOrderItem, 0, len(items))
	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
		sheetItems = append(sheetItems, models.SheetOrderItem{
			Name:      item.ItemName,
			Qty:       item.Quantity,
			Price:     item.Price,
			VegNonVeg: item.VegNonVeg,
		})
	}
	itemsJSON, err := json.Marshal(sheetItems)
	if err != nil {
		return models.SheetOrderPayload{}, err
	}

	orderTime := utils.FormatSheetTime(time.Now())
	terms := "No"
	termsAt := ""
	if termsAccepted {
		terms = "Yes"
		termsAt = orderTime
	}

	return models.SheetOrderPayload{
		SheetName: "Orders",
		Action:    "addOrder",
		Data: models.SheetOrderData{
			OrderID:         orderID,
			UserID:          userID,
			RestaurantName:  restaurantName,
			ItemsJSON:       string(itemsJSON),
			TotalItems:      totalItems,
			Subtotal:        pricing.Subtotal,
			TaxAmount:       pricing.Tax,
			DeliveryFee:     pricing.DeliveryFee,
			TotalPrice:      pricing.Total,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			CustomerEmail:   customer.Email,
			CustomerAddress: customer.Address,
			Latitude:        floatOrZero(customer.Latitude),
			Longitude:       floatOrZero(customer.Longitude),
			OrderTime:       orderTime,
			OrderStatus:     "Pending",
			TermsAccepted:   terms,
			TermsAcceptedAt: termsAt,
			InvoiceTrigger:  "No",
			CreatedAt:       orderTime,
			UpdatedAt:       orderTime,
		},
	}, nil
}

// Ping probes the web app with a GET; the script answers JSON to bare reads.
// Used by the health monitor.
func (ss *SheetsService) Ping() (time.Duration, error) {
	if err := ss.ValidateConfig(); err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := ss.httpClient.Get(ss.config.ScriptURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return time.Since(start), fmt.Errorf("sheet endpoint returned %d", resp.StatusCode)
	}
	return time.Since(start), nil
}

// postPayload POSTs a JSON envelope and decodes the script's JSON answer,
// retrying transient failures. Unlike the old storefront's hidden-iframe
// submit, the HTTP status and decoded body are a real completion signal.
func (ss *SheetsService) postPayload(payload interface{}) (*models.SheetResponse, error) {
	if err := ss.ValidateConfig(); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %v", err)
	}

	requestID := uuid.NewString()
	var lastErr error
	for attempt := 1; attempt <= ss.config.MaxRetries; attempt++ {
		if attempt > 1 {
			time.Sleep(ss.config.RetryDelay)
		}

		req, err := http.NewRequest(http.MethodPost, ss.config.ScriptURL, bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, fmt.Errorf("create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)

		resp, err := ss.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %v", err)
			utils.InfoLogger.Printf("sheets: attempt %d/%d (%s): %v", attempt, ss.config.MaxRetries, requestID, err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %v", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("sheet endpoint returned %d: %s", resp.StatusCode, string(body))
			continue
		}

		var sheetResp models.SheetResponse
		if err := json.Unmarshal(body, &sheetResp); err != nil {
			lastErr = fmt.Errorf("unmarshal response: %v", err)
			continue
		}
		return &sheetResp, nil
	}
	return nil, lastErr
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
