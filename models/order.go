package models

// CartLine is one (item, option) selection. Price is the snapshot taken when the line was added.
type CartLine struct {
	ItemID   string  `json:"_id"`
	Name     string  `json:"name"`
	Option   string  `json:"option"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns Quantity × Price.
func (l CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.Price
}

type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Address string `json:"address" validate:"required"`
}

// Order is the payload sent to POST /api/sendOrderNotification.
type Order struct {
	TableID   string       `json:"tableId,omitempty"`
	Items     []CartLine   `json:"items"`
	Total     float64      `json:"total"`
	OrderTime string       `json:"orderTime"`
	OrderID   string       `json:"orderId"`
	Customer  CustomerInfo `json:"customer"`
}

// NotificationResponse is the body returned by POST /api/sendOrderNotification.
type NotificationResponse struct {
	Success    bool   `json:"success"`
	MessageSid string `json:"messageSid,omitempty"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
}
