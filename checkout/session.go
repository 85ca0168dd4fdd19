// Package checkout drives one storefront session: the cart, the customer form and order placement.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"food-ordering/cart"
	"food-ordering/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Submitter delivers a placed order. storefront.Client implements it over HTTP.
type Submitter interface {
	SubmitOrder(ctx context.Context, order models.Order) (*models.NotificationResponse, error)
}

// Receipt is what a successful PlaceOrder returns.
type Receipt struct {
	Order      models.Order
	MessageSid string
}

// Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	TableID  string
	Cart     cart.Cart
	Customer models.CustomerInfo
	Errors   FieldErrors

	now func() time.Time
}

func NewSession(tableID string) *Session {
	return &Session{TableID: tableID, now: time.Now}
}

func (s *Session) AddToCart(item models.FoodItem, option string, price float64) {
	s.Cart = s.Cart.Add(item, option, price)
}

func (s *Session) RemoveFromCart(itemID, option string) {
	s.Cart = s.Cart.Remove(itemID, option)
}

func (s *Session) UpdateQuantity(itemID, option string, n int) {
	s.Cart = s.Cart.UpdateQuantity(itemID, option, n)
}

// SetCustomerField updates one form field and clears its error.
func (s *Session) SetCustomerField(field, value string) error {
	switch field {
	case FieldName:
		s.Customer.Name = value
	case FieldPhone:
		s.Customer.Phone = value
	case FieldAddress:
		s.Customer.Address = value
	default:
		return fmt.Errorf("unknown customer field %q", field)
	}
	delete(s.Errors, field)
	return nil
}

// PlaceOrder validates the session and submits it once.
// On failure the cart and the form are kept so the caller can retry.
func (s *Session) PlaceOrder(ctx context.Context, sub Submitter) (*Receipt, error) {
	if s.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if errs := ValidateCustomer(s.Customer); len(errs) > 0 {
		s.Errors = errs
		return nil, &ValidationError{Fields: errs}
	}
	s.Errors = nil

	order := s.buildOrder()
	resp, err := sub.SubmitOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("submit order %s: %w", order.OrderID, err)
	}
	if resp == nil || !resp.Success {
		reason := "order was not acknowledged"
		if resp != nil && resp.Error != "" {
			reason = resp.Error
		}
		return nil, fmt.Errorf("submit order %s: %s", order.OrderID, reason)
	}

	s.Cart = s.Cart.Clear()
	s.Customer = models.CustomerInfo{}
	s.Errors = nil
	return &Receipt{Order: order, MessageSid: resp.MessageSid}, nil
}

func (s *Session) buildOrder() models.Order {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	t := now().UTC()
	return models.Order{
		TableID:   s.TableID,
		Items:     s.Cart.Lines(),
		Total:     s.Cart.Total(),
		OrderTime: t.Format(time.RFC3339),
		OrderID:   "ORD-" + strconv.FormatInt(t.UnixMilli(), 10),
		Customer:  TrimCustomer(s.Customer),
	}
}
