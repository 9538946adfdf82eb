package router

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-api/docs" // registers the swagger document
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName identifies this API in health responses
const ServiceName = "gin-restaurant-api"

const indexPage = "<h1>Code challenge</h1>"

// SetupRouter builds the Gin engine with all routes, wiring services and
// controllers around the given database handle
func SetupRouter(db *gorm.DB) *gin.Engine {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log.StandardLogger()))

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}
