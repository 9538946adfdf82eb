package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices[i] is the price of seedPizzas[i] at seedRestaurants[i]
var seedPrices = []int{1, 4, 5}

// Seed populates an empty database with restaurants, pizzas and their prices.
// It reports whether anything was inserted; a database that already holds
// restaurants or pizzas is left untouched.
func Seed(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		rs := append([]models.Restaurant(nil), seedRestaurants...)
		if err := tx.Create(&rs).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		ps := append([]models.Pizza(nil), seedPizzas...)
		if err := tx.Create(&ps).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}
		rps := make([]models.RestaurantPizza, 0, len(seedPrices))
		for i, price := range seedPrices {
			rps = append(rps, models.RestaurantPizza{Price: price, PizzaID: ps[i].ID, RestaurantID: rs[i].ID})
		}
		if err := tx.Create(&rps).Error; err != nil {
			return fmt.Errorf("seed restaurant pizzas: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	log.Info("Database seeded successfully")
	return true, nil
}
