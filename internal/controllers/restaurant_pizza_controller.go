package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza prices
type RestaurantPizzaController interface {
	// CreateRestaurantPizza sets the price of a pizza at a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create or update a restaurant pizza
// @Description Offer a pizza at a restaurant for a price between 1 and 30.
// @Description If the restaurant already offers the pizza its price is updated; 201 is returned either way.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaRequest true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req models.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Debug("Rejected restaurant pizza body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	rp, err := c.service.UpsertRestaurantPizza(*req.Price, *req.PizzaID, *req.RestaurantID)
	if errors.Is(err, services.ErrValidation) {
		log.WithError(err).Debug("Rejected restaurant pizza")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to save restaurant pizza")
		return
	}

	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaResponse(rp))
}
