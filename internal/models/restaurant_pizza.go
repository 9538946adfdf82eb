package models

const (
	// MinRestaurantPizzaPrice and MaxRestaurantPizzaPrice bound the price, inclusive
	MinRestaurantPizzaPrice = 1
	MaxRestaurantPizzaPrice = 30
)

// RestaurantPizza links a restaurant to a pizza it sells at a given price.
// A (pizza_id, restaurant_id) pair appears at most once.
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	PizzaID      uint `gorm:"not null;uniqueIndex:idx_restaurant_pizzas_pair" json:"pizza_id"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_restaurant_pizzas_pair;index" json:"restaurant_id"`

	// Populated explicitly by the services, never persisted through associations
	Pizza      *Pizza      `gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}
