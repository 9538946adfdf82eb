package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
