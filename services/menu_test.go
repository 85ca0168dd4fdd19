package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	itemCols     = []string{"id", "name", "category_id", "is_available", "image_url", "options"}
	categoryCols = []string{"id", "name", "description"}
)

func TestCatalogStore_FoodData(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM food_items").
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow("i1", "Margherita", "c1", true, "", []byte(`{"Regular":150,"Large":200}`)).
			AddRow("i2", "Garlic Bread", "c2", true, "http://img/2.png", []byte(`{}`)))
	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(pgxmock.NewRows(categoryCols).
			AddRow("c1", "Pizza", "Wood-fired").
			AddRow("c2", "Starters", ""))

	data, err := NewCatalogStore(mock).FoodData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.FoodItems, 2)
	assert.Equal(t, "Margherita", data.FoodItems[0].Name)
	assert.Equal(t, 200.0, data.FoodItems[0].Options["Large"])
	assert.Equal(t, "c1", data.FoodItems[0].CategoryID)
	assert.Empty(t, data.FoodItems[1].Options)
	require.Len(t, data.FoodCategories, 2)
	assert.Equal(t, "Starters", data.FoodCategories[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_FoodData_NoAvailableItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM food_items").
		WillReturnRows(pgxmock.NewRows(itemCols))

	_, err = NewCatalogStore(mock).FoodData(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_FoodData_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT (.+) FROM food_items").WillReturnError(boom)

	_, err = NewCatalogStore(mock).FoodData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCatalogStore_FoodData_BadOptions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM food_items").
		WillReturnRows(pgxmock.NewRows(itemCols).AddRow("i1", "X", "c1", true, "", []byte(`[1,2]`)))

	_, err = NewCatalogStore(mock).FoodData(context.Background())
	assert.Error(t, err)
}

func TestCatalogStore_Categories(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(pgxmock.NewRows(categoryCols).AddRow("c1", "Pizza", ""))

	cats, err := NewCatalogStore(mock).Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(pgxmock.NewRows(categoryCols))
	_, err = NewCatalogStore(mock).Categories(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
