package models

// Wire types for the Apps Script spreadsheet backend. Field names mirror the
// sheet columns exactly; the sheet-side automation parses them by header.

// SheetOrderItem is one line of the Items_JSON column.
type SheetOrderItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	VegNonVeg string  `json:"vegNonVeg,omitempty"`
}

// SheetOrderData matches the Orders sheet columns. Workflow fields
// (Invoice_Trigger, Admin_Notes, ...) belong to the sheet's own bots; we only
// write their initial values.
type SheetOrderData struct {
	OrderID         string  `json:"Order_ID"`
	UserID          string  `json:"User_ID"`
	RestaurantName  string  `json:"Restaurant_Name"`
	ItemsJSON       string  `json:"Items_JSON"`
	TotalItems      int     `json:"Total_Items"`
	Subtotal        float64 `json:"Subtotal"`
	TaxAmount       float64 `json:"Tax_Amount"`
	DeliveryFee     float64 `json:"Delivery_Fee"`
	TotalPrice      float64 `json:"Total_Price"`
	CustomerName    string  `json:"Customer_Name"`
	CustomerPhone   string  `json:"Customer_Phone"`
	CustomerEmail   string  `json:"Customer_Email"`
	CustomerAddress string  `json:"Customer_Address"`
	Latitude        float64 `json:"Latitude"`
	Longitude       float64 `json:"Longitude"`
	OrderTime       string  `json:"Order_Time"`
	OrderStatus     string  `json:"Order_Status"`
	TermsAccepted   string  `json:"Terms_Accepted"`
	TermsAcceptedAt string  `json:"Terms_Accepted_At"`
	AdminNotes      string  `json:"Admin_Notes"`
	InvoiceTrigger  string  `json:"Invoice_Trigger"`
	InvoiceURL      string  `json:"Invoice_URL"`
	CreatedAt       string  `json:"Created_At"`
	UpdatedAt       string  `json:"Updated_At"`
}

// SheetUserData matches the Users sheet columns.
type SheetUserData struct {
	UserID      string  `json:"User_ID"`
	Name        string  `json:"Name"`
	Phone       string  `json:"Phone"`
	Email       string  `json:"Email"`
	Address     string  `json:"Address"`
	Lat         float64 `json:"Lat"`
	Long        float64 `json:"Long"`
	CreatedAt   string  `json:"Created_At"`
	TotalOrders int     `json:"Total_Orders"`
	LastOrderAt string  `json:"Last_Order_At"`
}

// SheetOrderPayload is the addOrder envelope.
type SheetOrderPayload struct {
	SheetName string         `json:"sheetName"`
	Action    string         `json:"action"`
	Data      SheetOrderData `json:"data"`
}

// SheetUserPayload is the addOrUpdateUser envelope.
type SheetUserPayload struct {
	SheetName string        `json:"sheetName"`
	Action    string        `json:"action"`
	Data      SheetUserData `json:"data"`
}

// SheetResponse is the JSON body the Apps Script answers with.
type SheetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Error   string `json:"error,omitempty"`
}
