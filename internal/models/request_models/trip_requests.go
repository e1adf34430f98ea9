package request_models

type CreateTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1"`
	Budget      int      `json:"budget"`
	TravelStyle string   `json:"travelStyle"`
	Interests   []string `json:"interests"`
}

type UpdateTripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      int      `json:"budget"`
	TravelStyle string   `json:"travelStyle"`
	Interests   []string `json:"interests"`
}

type CreateAttractionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Timing      string  `json:"timing"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Category    string  `json:"category"`
	Day         int     `json:"day"`
}

type CreateRestaurantRequest struct {
	Name     string  `json:"name" binding:"required"`
	Cuisine  string  `json:"cuisine"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Price    int     `json:"price"`
	Day      int     `json:"day"`
	MealType string  `json:"mealType"`
}
