package models

// RestaurantSummary is the list representation of a restaurant, without join data
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the list representation of a pizza, without join data
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaEntry is a pizza offered by a restaurant, as nested in RestaurantDetail
type RestaurantPizzaEntry struct {
	ID    uint         `json:"id"`
	Price int          `json:"price"`
	Pizza PizzaSummary `json:"pizza"`
}

// RestaurantDetail is a restaurant together with the pizzas it offers
type RestaurantDetail struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// RestaurantPizzaResponse is returned after creating or updating a RestaurantPizza
type RestaurantPizzaResponse struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Pointers distinguish a missing or null field from a zero value.
type CreateRestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required,min=1,max=30"`
	PizzaID      *uint `json:"pizza_id" binding:"required"`
	RestaurantID *uint `json:"restaurant_id" binding:"required"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantDetail builds the detail view; rps must have Pizza populated
func NewRestaurantDetail(r Restaurant, rps []RestaurantPizza) RestaurantDetail {
	entries := make([]RestaurantPizzaEntry, 0, len(rps))
	for _, rp := range rps {
		entry := RestaurantPizzaEntry{ID: rp.ID, Price: rp.Price}
		if rp.Pizza != nil {
			entry.Pizza = NewPizzaSummary(*rp.Pizza)
		}
		entries = append(entries, entry)
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

// NewRestaurantPizzaResponse builds the response; rp must have Pizza and Restaurant populated
func NewRestaurantPizzaResponse(rp RestaurantPizza) RestaurantPizzaResponse {
	resp := RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		resp.Pizza = NewPizzaSummary(*rp.Pizza)
	}
	if rp.Restaurant != nil {
		resp.Restaurant = NewRestaurantSummary(*rp.Restaurant)
	}
	return resp
}
