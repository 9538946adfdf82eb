package models

// Restaurant represents a restaurant. Its RestaurantPizza rows are deleted with it.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
