package response_models

type TripResponse struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      int      `json:"budget"`
	TravelStyle string   `json:"travelStyle"`
	Interests   []string `json:"interests"`
}

type AttractionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Timing      string  `json:"timing"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Category    string  `json:"category"`
	Day         int     `json:"day"`
	Upvotes     int     `json:"upvotes"`
}

type RestaurantResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cuisine  string  `json:"cuisine"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Price    int     `json:"price"`
	Day      int     `json:"day"`
	MealType string  `json:"mealType"`
	Upvotes  int     `json:"upvotes"`
}

type NearbyPlaceResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	PriceLevel string  `json:"priceLevel"`
	Distance   string  `json:"distance"`
	Upvotes    int     `json:"upvotes"`
}
