package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas lists all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas, without the restaurants offering them
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve pizzas")
		return
	}

	result := make([]models.PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		result = append(result, models.NewPizzaSummary(p))
	}
	ctx.JSON(http.StatusOK, result)
}
