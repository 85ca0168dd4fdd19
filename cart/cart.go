// Package cart holds the storefront cart. Every operation returns a new Cart and leaves the receiver untouched.
package cart

import "food-ordering/models"

// Cart is an ordered list of lines, at most one per (item id, option).
// The zero value is an empty cart.
type Cart struct {
	lines []models.CartLine
}

// New builds a cart from existing lines, merging duplicates and dropping quantities below 1.
func New(lines ...models.CartLine) Cart {
	var c Cart
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		if i := c.index(l.ItemID, l.Option); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add puts one unit of item/option in the cart. An existing line keeps its original price.
func (c Cart) Add(item models.FoodItem, option string, price float64) Cart {
	out := c.clone()
	if i := out.index(item.ID, option); i >= 0 {
		out.lines[i].Quantity++
		return out
	}
	out.lines = append(out.lines, models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Option:   option,
		Price:    price,
		Quantity: 1,
	})
	return out
}

func (c Cart) Remove(itemID, option string) Cart {
	i := c.index(itemID, option)
	if i < 0 {
		return c.clone()
	}
	out := Cart{lines: make([]models.CartLine, 0, len(c.lines)-1)}
	out.lines = append(out.lines, c.lines[:i]...)
	out.lines = append(out.lines, c.lines[i+1:]...)
	return out
}

// UpdateQuantity sets the quantity of a line. n < 1 removes it.
func (c Cart) UpdateQuantity(itemID, option string, n int) Cart {
	if n < 1 {
		return c.Remove(itemID, option)
	}
	out := c.clone()
	if i := out.index(itemID, option); i >= 0 {
		out.lines[i].Quantity = n
	}
	return out
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Total equals Subtotal; there are no taxes or discounts.
func (c Cart) Total() float64 {
	return c.Subtotal()
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Len() int { return len(c.lines) }

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines in insertion order.
func (c Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity of the given line, 0 when absent.
func (c Cart) Quantity(itemID, option string) int {
	if i := c.index(itemID, option); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c Cart) index(itemID, option string) int {
	for i, l := range c.lines {
		if l.ItemID == itemID && l.Option == option {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	if c.lines == nil {
		return Cart{}
	}
	return Cart{lines: c.Lines()}
}
