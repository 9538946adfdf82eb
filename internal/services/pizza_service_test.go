package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas()
	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)

	f := seedFixture(t, db)
	pizzas, err = service.GetAllPizzas()
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, f.pizzas[0].ID, pizzas[0].ID)
	assert.Equal(t, "Geri", pizzas[1].Name)
}

func TestGetPizzaByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewPizzaService(db)

	pizza, err := service.GetPizzaByID(f.pizzas[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese, Pepperoni", pizza.Ingredients)

	_, err = service.GetPizzaByID(9999)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestGetPizzasByIDs(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	service := NewPizzaService(db)

	pizzas, err := service.GetPizzasByIDs([]uint{f.pizzas[0].ID, 9999})
	require.NoError(t, err)
	assert.Len(t, pizzas, 1)
	assert.Equal(t, "Emma", pizzas[f.pizzas[0].ID].Name)

	pizzas, err = service.GetPizzasByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, pizzas)
}
