package storefront

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"food-ordering/models"
)

var ErrNoFoodItems = errors.New("No food items available")

// MenuItem is a food item with its category resolved.
type MenuItem struct {
	models.FoodItem
	Category *models.Category
}

type Menu struct {
	Items      []MenuItem
	Categories []models.Category
}

// BuildMenu joins items to their categories once. Items pointing at an unknown category keep a nil Category.
func BuildMenu(data *models.FoodData) (*Menu, error) {
	if data == nil || len(data.FoodItems) == 0 {
		return nil, ErrNoFoodItems
	}
	m := &Menu{Categories: append([]models.Category(nil), data.FoodCategories...)}
	byID := make(map[string]*models.Category, len(m.Categories))
	for i := range m.Categories {
		byID[m.Categories[i].ID] = &m.Categories[i]
	}
	m.Items = make([]MenuItem, 0, len(data.FoodItems))
	for _, it := range data.FoodItems {
		m.Items = append(m.Items, MenuItem{FoodItem: it, Category: byID[it.CategoryID]})
	}
	return m, nil
}

// LoadMenu fetches /api/foodData and builds the menu.
func (c *Client) LoadMenu(ctx context.Context) (*Menu, error) {
	data, err := c.FetchFoodData(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNoFoodItems
		}
		return nil, err
	}
	return BuildMenu(data)
}

// DefaultCategory is the first category, the one shown when the menu opens.
func (m *Menu) DefaultCategory() (models.Category, bool) {
	if len(m.Categories) == 0 {
		return models.Category{}, false
	}
	return m.Categories[0], true
}

// Filter returns the items of categoryID whose name contains query, case-insensitively.
// An empty categoryID matches every category.
func (m *Menu) Filter(categoryID, query string) []MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []MenuItem
	for _, it := range m.Items {
		if categoryID != "" && it.CategoryID != categoryID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (m *Menu) Item(id string) (MenuItem, bool) {
	for _, it := range m.Items {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

// OptionNames lists an item's options by ascending price, then label.
func (it MenuItem) OptionNames() []string {
	names := make([]string, 0, len(it.Options))
	for k := range it.Options {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := it.Options[names[i]], it.Options[names[j]]
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}
