package services

import (
	"fmt"
	"strconv"
	"strings"

	"food-ordering/models"
)

// OrderRequest is the body of POST /api/sendOrderNotification.
// Customer is a pointer so a missing object can be told apart from an empty one.
type OrderRequest struct {
	Items     []models.CartLine    `json:"items"`
	Customer  *models.CustomerInfo `json:"customer"`
	Total     float64              `json:"total"`
	OrderID   string               `json:"orderId"`
	TableID   string               `json:"tableId,omitempty"`
	OrderTime string               `json:"orderTime,omitempty"`
}

// RenderOrderMessage builds the WhatsApp/Telegram text for an order.
// Missing values fall back to "N/A", "Unnamed Item" or 0.
func RenderOrderMessage(req OrderRequest) string {
	var customer models.CustomerInfo
	if req.Customer != nil {
		customer = *req.Customer
	}

	lines := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, fmt.Sprintf("➤ %s (%s) - %d × ₹%s = ₹%s",
			orDefault(it.Name, "Unnamed Item"),
			orDefault(it.Option, "N/A"),
			it.Quantity,
			formatAmount(it.Price),
			formatAmount(it.LineTotal()),
		))
	}

	var b strings.Builder
	b.WriteString("📦 *New Order Received!* 📦\n\n")
	fmt.Fprintf(&b, "🆔 *Order ID:* %s\n", orDefault(req.OrderID, "N/A"))
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", orDefault(customer.Name, "N/A"))
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", orDefault(customer.Phone, "N/A"))
	fmt.Fprintf(&b, "🏠 *Address:* %s\n\n", orDefault(customer.Address, "N/A"))
	fmt.Fprintf(&b, "📝 *Order Items:*\n%s\n\n", strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "💰 *Total Amount:* ₹%.2f\n\n", req.Total)
	b.WriteString("Thank you for the order! 🙏")
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// formatAmount prints 200 as "200" and 12.5 as "12.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
