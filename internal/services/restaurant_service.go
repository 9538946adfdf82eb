package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurants table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by ID
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// GetRestaurantPizzas retrieves the pizzas offered by a restaurant, with Pizza populated
	GetRestaurantPizzas(restaurantID uint) ([]models.RestaurantPizza, error)
	// DeleteRestaurant deletes a restaurant and every RestaurantPizza referencing it
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	return findRestaurant(s.db, id)
}

func (s *restaurantService) GetRestaurantPizzas(restaurantID uint) ([]models.RestaurantPizza, error) {
	rps := []models.RestaurantPizza{}
	if err := s.db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&rps).Error; err != nil {
		return nil, fmt.Errorf("list restaurant pizzas for restaurant %d: %w", restaurantID, err)
	}

	pizzaIDs := make([]uint, 0, len(rps))
	for _, rp := range rps {
		pizzaIDs = append(pizzaIDs, rp.PizzaID)
	}
	pizzas, err := findPizzas(s.db, pizzaIDs)
	if err != nil {
		return nil, err
	}
	for i := range rps {
		if p, ok := pizzas[rps[i].PizzaID]; ok {
			rps[i].Pizza = &p
		}
	}
	return rps, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findRestaurant(tx, id); err != nil {
			return err
		}
		// SQLite only honours ON DELETE CASCADE with the foreign_keys pragma on
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("delete restaurant pizzas for restaurant %d: %w", id, err)
		}
		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

func findRestaurant(db *gorm.DB, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}
