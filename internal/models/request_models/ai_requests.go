package request_models

// UserPreferences mirrors the preference block the web client sends with
// every planning request.
type UserPreferences struct {
	Interests      []string `json:"interests"`
	Budget         int      `json:"budget"`
	Pace           string   `json:"pace"`
	FoodPreference []string `json:"foodPreference"`
	TravelStyle    []string `json:"travelStyle"`
}

type Geotag struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Weather struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

type LocationInfo struct {
	City    string   `json:"city"`
	Address string   `json:"address,omitempty"`
	Geotag  *Geotag  `json:"geotag,omitempty"`
	Weather *Weather `json:"weather,omitempty"`
}

type TripPlanRequest struct {
	Location        LocationInfo    `json:"location"`
	Duration        int             `json:"duration"`
	UserPreferences UserPreferences `json:"userPreferences"`
	Visited         []string        `json:"visited"`
	PreviouslyShown []string        `json:"previouslyShown"`
}

type ShuffleRequest struct {
	PlaceName       string          `json:"placeName"`
	PlaceType       string          `json:"placeType"`
	Location        LocationInfo    `json:"location"`
	UserPreferences UserPreferences `json:"userPreferences"`
	Visited         []string        `json:"visited"`
	PreviouslyShown []string        `json:"previouslyShown"`
}

type ChatRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// AdjustItineraryRequest carries the user's change request together with the
// itinerary currently on screen. Pointer fields distinguish missing from
// empty for the mandatory-field check.
type AdjustItineraryRequest struct {
	UserMessage      string           `json:"userMessage"`
	CurrentItinerary map[string]any   `json:"currentItinerary"`
	Location         *LocationInfo    `json:"location"`
	UserPreferences  *UserPreferences `json:"userPreferences,omitempty"`
}
