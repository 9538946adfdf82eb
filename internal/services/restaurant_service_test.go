package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, f.restaurants[0].ID, restaurants[0].ID)
	assert.Equal(t, "Sanjay's Pizza", restaurants[1].Name)
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewRestaurantService(db)

	restaurant, err := service.GetRestaurantByID(f.restaurants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "address1", restaurant.Address)

	_, err = service.GetRestaurantByID(9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetRestaurantPizzas(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewRestaurantService(db)

	rps, err := service.GetRestaurantPizzas(f.restaurants[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, rps)
	assert.Empty(t, rps)

	require.NoError(t, db.Create(&[]models.RestaurantPizza{
		{Price: 10, PizzaID: f.pizzas[1].ID, RestaurantID: f.restaurants[0].ID},
		{Price: 7, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID},
		{Price: 3, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[1].ID},
	}).Error)

	rps, err = service.GetRestaurantPizzas(f.restaurants[0].ID)
	require.NoError(t, err)
	require.Len(t, rps, 2)

	assert.Equal(t, 10, rps[0].Price)
	require.NotNil(t, rps[0].Pizza)
	assert.Equal(t, "Geri", rps[0].Pizza.Name)

	assert.Equal(t, 7, rps[1].Price)
	require.NotNil(t, rps[1].Pizza)
	assert.Equal(t, "Emma", rps[1].Pizza.Name)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewRestaurantService(db)

	require.NoError(t, db.Create(&[]models.RestaurantPizza{
		{Price: 10, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID},
		{Price: 12, PizzaID: f.pizzas[1].ID, RestaurantID: f.restaurants[0].ID},
		{Price: 3, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[1].ID},
	}).Error)

	require.NoError(t, service.DeleteRestaurant(f.restaurants[0].ID))

	_, err := service.GetRestaurantByID(f.restaurants[0].ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var remaining []models.RestaurantPizza
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, f.restaurants[1].ID, remaining[0].RestaurantID)

	// pizzas are never deleted alongside a restaurant
	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(2), pizzas)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	err := service.DeleteRestaurant(9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
