package response_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GeocodeResult struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address"`
}

type PlaceSummary struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float32 `json:"rating"`
}

type DirectionsResult struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Summary  string `json:"summary"`
}
