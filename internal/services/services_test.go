package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
	require.NoError(t, db.Create(&f.restaurants).Error)
	require.NoError(t, db.Create(&f.pizzas).Error)
	return f
}
