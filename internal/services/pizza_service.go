package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizzas table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by ID
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// GetPizzasByIDs retrieves the pizzas with the given IDs, keyed by ID
	GetPizzasByIDs(ids []uint) (map[uint]models.Pizza, error)
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	return findPizza(s.db, id)
}

func (s *pizzaService) GetPizzasByIDs(ids []uint) (map[uint]models.Pizza, error) {
	return findPizzas(s.db, ids)
}

func findPizza(db *gorm.DB, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, ErrPizzaNotFound
		}
		return models.Pizza{}, fmt.Errorf("get pizza %d: %w", id, err)
	}
	return pizza, nil
}

func findPizzas(db *gorm.DB, ids []uint) (map[uint]models.Pizza, error) {
	result := make(map[uint]models.Pizza, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var pizzas []models.Pizza
	if err := db.Where("id IN ?", ids).Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("get pizzas: %w", err)
	}
	for _, p := range pizzas {
		result[p.ID] = p
	}
	return result, nil
}
