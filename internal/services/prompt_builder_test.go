package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgenie/internal/models/request_models"
)

func tripPlanRequest() request_models.TripPlanRequest {
	return request_models.TripPlanRequest{
		Location: request_models.LocationInfo{City: "Mumbai"},
		Duration: 3,
		UserPreferences: request_models.UserPreferences{
			Interests:      []string{"history", "food"},
			Budget:         5000,
			Pace:           "relaxed",
			FoodPreference: []string{"vegetarian"},
			TravelStyle:    []string{"solo"},
		},
	}
}

func TestBuildTripPlannerPromptIncludesRequestData(t *testing.T) {
	prompt := BuildTripPlannerPrompt(tripPlanRequest())

	assert.Contains(t, prompt, "Generate a 3-day trip plan for Mumbai.")
	assert.Contains(t, prompt, "Interests: history, food")
	assert.Contains(t, prompt, "Budget: 5000")
	assert.Contains(t, prompt, "Pace: relaxed")
	assert.Contains(t, prompt, "Travel Style: solo")
}

func TestBuildTripPlannerPromptEmptyListsBecomeNone(t *testing.T) {
	req := tripPlanRequest()
	req.Visited = nil
	req.PreviouslyShown = []string{}

	prompt := BuildTripPlannerPrompt(req)

	assert.Contains(t, prompt, "Already visited: None")
	assert.Contains(t, prompt, "Previously shown: None")
}

func TestBuildTripPlannerPromptExclusionsListed(t *testing.T) {
	req := tripPlanRequest()
	req.Visited = []string{"Gateway of India"}
	req.PreviouslyShown = []string{"Marine Drive", "Juhu Beach"}

	prompt := BuildTripPlannerPrompt(req)

	assert.Contains(t, prompt, "Already visited: Gateway of India")
	assert.Contains(t, prompt, "Previously shown: Marine Drive, Juhu Beach")
}

func TestBuildTripPlannerPromptOptionalLocationData(t *testing.T) {
	req := tripPlanRequest()

	bare := BuildTripPlannerPrompt(req)
	assert.NotContains(t, bare, "Coordinates:")
	assert.NotContains(t, bare, "Weather:")

	req.Location.Geotag = &request_models.Geotag{Latitude: 19.076, Longitude: 72.8777}
	req.Location.Weather = &request_models.Weather{Temperature: 31.5, Condition: "Humid"}

	enriched := BuildTripPlannerPrompt(req)
	assert.Contains(t, enriched, "Coordinates:")
	assert.Contains(t, enriched, "31.5°C, Humid")
}

func TestBuildTripPlannerPromptStatesJSONRules(t *testing.T) {
	prompt := BuildTripPlannerPrompt(tripPlanRequest())

	assert.Contains(t, prompt, "NO trailing commas")
	assert.Contains(t, prompt, `"days"`)
	assert.Contains(t, prompt, `"cafes"`)
	assert.Contains(t, prompt, `"medical"`)
	assert.Contains(t, prompt, `"tips"`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestBuildShufflePrompt(t *testing.T) {
	req := request_models.ShuffleRequest{
		PlaceName: "Gateway of India",
		PlaceType: "monument",
		Location:  request_models.LocationInfo{City: "Mumbai"},
		UserPreferences: request_models.UserPreferences{
			Interests: []string{"history"},
		},
		Visited: []string{"Elephanta Caves"},
	}

	prompt := BuildShufflePrompt(req, nil)

	assert.Contains(t, prompt, `"Gateway of India"`)
	assert.Contains(t, prompt, "Same type/category as original (monument)")
	assert.Contains(t, prompt, "Located IN Mumbai ONLY")
	assert.Contains(t, prompt, "NOT already visited: Elephanta Caves")
	assert.Contains(t, prompt, "NOT previously shown: None")
	assert.Contains(t, prompt, `"new_place"`)
}

func TestBuildShufflePromptIncludesCandidateHints(t *testing.T) {
	req := request_models.ShuffleRequest{
		PlaceName: "Gateway of India",
		PlaceType: "monument",
		Location:  request_models.LocationInfo{City: "Mumbai"},
	}

	prompt := BuildShufflePrompt(req, []string{"Haji Ali Dargah", "Banganga Tank"})

	assert.Contains(t, prompt, "KNOWN NEARBY ALTERNATIVES")
	assert.Contains(t, prompt, "- Haji Ali Dargah")
	assert.Contains(t, prompt, "- Banganga Tank")

	withoutHints := BuildShufflePrompt(req, nil)
	assert.NotContains(t, withoutHints, "KNOWN NEARBY ALTERNATIVES")
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := BuildChatPrompt("what should I pack?", map[string]any{"city": "Mumbai"})

	assert.Contains(t, prompt, "User message: what should I pack?")
	assert.Contains(t, prompt, `"city":"Mumbai"`)
	assert.Contains(t, prompt, "TripGenie PRO MAX")

	bare := BuildChatPrompt("hello", nil)
	assert.NotContains(t, bare, "Context:")
}

func TestBuildAdjustItineraryPrompt(t *testing.T) {
	req := request_models.AdjustItineraryRequest{
		UserMessage: "replace day 2 with beaches",
		CurrentItinerary: map[string]any{
			"days": []any{map[string]any{"day": float64(1)}},
		},
		Location: &request_models.LocationInfo{City: "Mumbai"},
	}

	prompt := BuildAdjustItineraryPrompt(req)

	assert.Contains(t, prompt, "USER REQUEST: replace day 2 with beaches")
	assert.Contains(t, prompt, "LOCATION: Mumbai")
	assert.Contains(t, prompt, "CURRENT ITINERARY:")
	assert.Contains(t, prompt, `"acknowledgment"`)
	assert.Contains(t, prompt, `"recommendation"`)
}
