package models

// FoodItem is a row from food_items. Options maps an option label (e.g. "Large") to its price.
type FoodItem struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	CategoryID  string             `json:"category"`
	IsAvailable bool               `json:"isAvailable"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Options     map[string]float64 `json:"options"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FoodData is the payload of GET /api/foodData.
type FoodData struct {
	FoodItems      []FoodItem `json:"foodItems"`
	FoodCategories []Category `json:"foodCategories"`
}
