package response_models

// PlannedPlace is one stop inside a day of the generated itinerary. Field
// names follow the wire contract the web client already consumes.
type PlannedPlace struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timing      string `json:"timing"`
	Transport   string `json:"transport"`
	Distance    string `json:"distance"`
}

type DayPlan struct {
	Day    int            `json:"day"`
	Places []PlannedPlace `json:"places"`
}

type Cafe struct {
	Name     string `json:"name"`
	Vibe     string `json:"vibe"`
	Price    string `json:"price"`
	BestDish string `json:"bestDish"`
	Distance string `json:"distance"`
}

type TripPlan struct {
	Days    []DayPlan `json:"days"`
	Cafes   []Cafe    `json:"cafes"`
	Medical []string  `json:"medical"`
	Tips    []string  `json:"tips"`
}

type ShuffleResult struct {
	NewPlace    string `json:"new_place"`
	Description string `json:"description"`
}

type ChatReply struct {
	Message string `json:"message"`
}

// AdjustedItinerary tolerates partial model replies; only the collections
// are backfilled, the conversational fields pass through as-is.
type AdjustedItinerary struct {
	Acknowledgment string    `json:"acknowledgment,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
	Days           []DayPlan `json:"days"`
	Cafes          []Cafe    `json:"cafes"`
	Medical        []string  `json:"medical"`
	Tips           []string  `json:"tips"`
}
