package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"food-ordering/db"
	"food-ordering/models"
)

// ErrNotFound is returned when the menu store has nothing to serve.
var ErrNotFound = errors.New("not found")

// CatalogReader is what the HTTP layer needs from the menu store. CatalogStore and CatalogCache both satisfy it.
type CatalogReader interface {
	FoodData(ctx context.Context) (*models.FoodData, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// CatalogStore reads the menu from Postgres.
type CatalogStore struct {
	db db.DBTX
}

func NewCatalogStore(conn db.DBTX) *CatalogStore {
	return &CatalogStore{db: conn}
}

// FoodData returns every available item together with all categories.
// ErrNotFound when no item is available.
func (s *CatalogStore) FoodData(ctx context.Context) (*models.FoodData, error) {
	items, err := s.availableItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	cats, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &models.FoodData{FoodItems: items, FoodCategories: cats}, nil
}

func (s *CatalogStore) Categories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, ErrNotFound
	}
	return cats, nil
}

func (s *CatalogStore) availableItems(ctx context.Context) ([]models.FoodItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, category_id, is_available, image_url, options
		FROM food_items
		WHERE is_available = true
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}
	defer rows.Close()

	items := []models.FoodItem{}
	for rows.Next() {
		var it models.FoodItem
		var optionsJSON []byte
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.IsAvailable, &it.ImageURL, &optionsJSON); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		it.Options = map[string]float64{}
		if len(optionsJSON) > 0 {
			if err := json.Unmarshal(optionsJSON, &it.Options); err != nil {
				return nil, fmt.Errorf("decode options of %s: %w", it.ID, err)
			}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food items: %w", err)
	}
	return items, nil
}

func (s *CatalogStore) listCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description FROM categories
		ORDER BY position, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}
