package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with the pizzas it offers
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza prices
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without the pizzas they offer
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurants")
		return
	}

	result := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, models.NewRestaurantSummary(r))
	}
	ctx.JSON(http.StatusOK, result)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it offers and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurant")
		return
	}

	rps, err := c.service.GetRestaurantPizzas(restaurant.ID)
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurant pizzas")
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant, rps))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every price it set for a pizza
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	err := c.service.DeleteRestaurant(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to delete restaurant")
		return
	}

	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}

func respondRestaurantNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
}
