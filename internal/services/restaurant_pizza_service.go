package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the prices at which restaurants offer pizzas
type RestaurantPizzaService interface {
	// UpsertRestaurantPizza sets the price of a pizza at a restaurant, creating the
	// link if needed. The returned row has Pizza and Restaurant populated.
	UpsertRestaurantPizza(price int, pizzaID, restaurantID uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) UpsertRestaurantPizza(price int, pizzaID, restaurantID uint) (models.RestaurantPizza, error) {
	if price < models.MinRestaurantPizzaPrice || price > models.MaxRestaurantPizzaPrice {
		return models.RestaurantPizza{}, fmt.Errorf("%w: price %d out of range", ErrValidation, price)
	}

	var rp models.RestaurantPizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, pizzaID)
		if err != nil {
			return referenceError(err)
		}
		restaurant, err := findRestaurant(tx, restaurantID)
		if err != nil {
			return referenceError(err)
		}

		err = tx.Where("pizza_id = ? AND restaurant_id = ?", pizzaID, restaurantID).First(&rp).Error
		switch {
		case err == nil:
			rp.Price = price
			if err := tx.Model(&rp).Update("price", price).Error; err != nil {
				return fmt.Errorf("update restaurant pizza %d: %w", rp.ID, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rp = models.RestaurantPizza{Price: price, PizzaID: pizzaID, RestaurantID: restaurantID}
			// a concurrent request may have inserted the same pair since the lookup
			err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "pizza_id"}, {Name: "restaurant_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"price"}),
			}).Create(&rp).Error
			if err != nil {
				return fmt.Errorf("create restaurant pizza: %w", err)
			}
			if rp.ID == 0 {
				if err := tx.Where("pizza_id = ? AND restaurant_id = ?", pizzaID, restaurantID).First(&rp).Error; err != nil {
					return fmt.Errorf("reload restaurant pizza: %w", err)
				}
			}
		default:
			return fmt.Errorf("find restaurant pizza: %w", err)
		}

		rp.Pizza = &pizza
		rp.Restaurant = &restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}

// referenceError turns a missing pizza or restaurant into a validation failure
func referenceError(err error) error {
	if errors.Is(err, ErrPizzaNotFound) || errors.Is(err, ErrRestaurantNotFound) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
