package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripgenie/internal/models/request_models"
)

// systemPrompt frames every generation request. The JSON rules are repeated
// aggressively because smaller models ignore them otherwise.
const systemPrompt = `You are **TripGenie PRO MAX**, an advanced AI travel engine and trip planner.

Your job is to combine:
- User interests selected before using the website
- Popularity reasoning for well known places
- Intelligent shuffle behavior
- Weather-aware timing logic (NON-RESTRICTIVE)
- Cafes & food recommendations
- Geotag & location-aware suggestions
- Medical store & emergency help
- Transport reasoning
- Memory of previously shown places

====================================================
### CRITICAL JSON OUTPUT REQUIREMENTS

YOU MUST RETURN VALID JSON AND NOTHING ELSE.

RULES:
1. NO markdown code blocks
2. NO explanations before or after the JSON
3. NO preambles or conclusions
4. Start with { and end with }
5. Use double quotes for all strings
6. NO trailing commas
7. Escape special characters properly
`

const jsonStructureRules = `CRITICAL JSON OUTPUT REQUIREMENTS - FOLLOW EXACTLY:
You MUST return ONLY valid JSON.

ABSOLUTE RULES:
1. Start with { and end with } - NO other text before or after
2. Use double quotes for ALL strings and keys (not single quotes)
3. NO markdown code blocks (no backticks or code fences)
4. NO explanations, comments, or any text outside the JSON
5. NO trailing commas before } or ]
6. Escape special characters in strings (use \n for newlines, \" for quotes)
7. Your ENTIRE response must be ONLY the JSON object - nothing else
`

// joinOrNone renders a list for prompt text, with an explicit token when the
// list is empty so the model never sees a dangling label.
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// BuildTripPlannerPrompt renders the day-wise itinerary request. It is total
// over well-formed input: empty lists become "None" and optional location
// data is simply omitted.
func BuildTripPlannerPrompt(req request_models.TripPlanRequest) string {
	var sb strings.Builder

	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Generate a %d-day trip plan for %s.\n\n", req.Duration, req.Location.City)

	sb.WriteString("USER PREFERENCES:\n")
	fmt.Fprintf(&sb, "- Interests: %s\n", joinOrNone(req.UserPreferences.Interests))
	fmt.Fprintf(&sb, "- Budget: %d\n", req.UserPreferences.Budget)
	fmt.Fprintf(&sb, "- Pace: %s\n", req.UserPreferences.Pace)
	fmt.Fprintf(&sb, "- Food: %s\n", joinOrNone(req.UserPreferences.FoodPreference))
	fmt.Fprintf(&sb, "- Travel Style: %s\n", joinOrNone(req.UserPreferences.TravelStyle))

	sb.WriteString("\nLOCATION DATA:\n")
	fmt.Fprintf(&sb, "- City: %s\n", req.Location.City)
	if req.Location.Geotag != nil {
		fmt.Fprintf(&sb, "- Coordinates: %f, %f\n", req.Location.Geotag.Latitude, req.Location.Geotag.Longitude)
	}
	if req.Location.Weather != nil {
		fmt.Fprintf(&sb, "- Weather: %.1f°C, %s\n", req.Location.Weather.Temperature, req.Location.Weather.Condition)
	}

	sb.WriteString("\nEXCLUSIONS:\n")
	fmt.Fprintf(&sb, "- Already visited: %s\n", joinOrNone(req.Visited))
	fmt.Fprintf(&sb, "- Previously shown: %s\n", joinOrNone(req.PreviouslyShown))

	fmt.Fprintf(&sb, "\nIMPORTANT: Provide REAL, SPECIFIC places that actually exist in %s. Do NOT use generic or fictional names.\n", req.Location.City)

	sb.WriteString(`
Provide:
1. Day-wise itinerary with 3-5 REAL attractions per day (use actual place names that exist)
2. Timing recommendations based on weather
3. 4-7 REAL cafe/restaurant suggestions with actual names, vibes, price ranges, best dishes
4. 2-3 REAL nearby medical stores/pharmacies with actual names
5. Transport recommendations between places with realistic distances
6. Weather-appropriate tips and medicine kit suggestions

`)
	sb.WriteString(jsonStructureRules)
	sb.WriteString(`
EXACT JSON STRUCTURE REQUIRED:
{
  "days": [
    {
      "day": 1,
      "places": [
        {
          "name": "Place Name (REAL place that exists)",
          "type": "attraction",
          "description": "Brief description of the place",
          "timing": "Morning 9 AM - 12 PM",
          "transport": "Auto rickshaw or Cab",
          "distance": "2.5 km"
        }
      ]
    }
  ],
  "cafes": [
    {
      "name": "Real Cafe Name",
      "vibe": "Cozy, casual",
      "price": "₹500-800",
      "bestDish": "Signature dish name",
      "distance": "1.2 km"
    }
  ],
  "medical": [
    "Apollo Pharmacy - Main Street"
  ],
  "tips": [
    "Carry water bottles during hot weather"
  ]
}

FIELD REQUIREMENTS (ALL MANDATORY):
- "days": one object per day, each with "day" (number) and "places" (array of
  objects with "name", "type", "description", "timing", "transport",
  "distance", all strings)
- "cafes": objects with "name", "vibe", "price", "bestDish", "distance"
- "medical": array of strings (store names with addresses)
- "tips": array of strings

`)
	fmt.Fprintf(&sb, `CRITICAL:
- Generate %d days (one object per day in "days" array)
- Each day should have 3-5 places
- Include 4-7 cafes/restaurants
- Include 2-3 medical stores
- Include 3-5 tips
- ALL fields must be strings (except "day" which is a number)
- Use REAL place names that exist in %s
- NO missing fields

Return ONLY the JSON object - nothing else.
`, req.Duration, req.Location.City)

	return sb.String()
}

// BuildShufflePrompt asks for one replacement place of the same category.
// candidates, when present, are similar known places offered as hints.
func BuildShufflePrompt(req request_models.ShuffleRequest, candidates []string) string {
	var sb strings.Builder

	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nSHUFFLE RECOMMENDATION - Find Alternative\n\n")

	sb.WriteString("ORIGINAL PLACE:\n")
	fmt.Fprintf(&sb, "- Name: %q\n", req.PlaceName)
	fmt.Fprintf(&sb, "- Type: %s\n", req.PlaceType)

	sb.WriteString("\nREPLACEMENT MUST BE:\n")
	fmt.Fprintf(&sb, "- Same type/category as original (%s)\n", req.PlaceType)
	fmt.Fprintf(&sb, "- Located IN %s ONLY (REAL place that actually exists)\n", req.Location.City)
	fmt.Fprintf(&sb, "- Match user interests: %s\n", joinOrNone(req.UserPreferences.Interests))
	fmt.Fprintf(&sb, "- NOT already visited: %s\n", joinOrNone(req.Visited))
	fmt.Fprintf(&sb, "- NOT previously shown: %s\n", joinOrNone(req.PreviouslyShown))

	if len(candidates) > 0 {
		sb.WriteString("\nKNOWN NEARBY ALTERNATIVES (consider these first if they fit):\n")
		for _, name := range candidates {
			fmt.Fprintf(&sb, "- %s\n", name)
		}
	}

	fmt.Fprintf(&sb, `
CRITICAL REQUIREMENTS:
1. The new place MUST BE A REAL, EXISTING location in %s
2. Do NOT suggest generic names - use actual place names that people can visit
3. Match the original place's category and purpose
4. Provide a 1-2 sentence reason why this is a good alternative
`, req.Location.City)

	if req.Location.Weather != nil {
		fmt.Fprintf(&sb, "\nCURRENT CONDITIONS: %.1f°C, %s\n", req.Location.Weather.Temperature, req.Location.Weather.Condition)
	}

	fmt.Fprintf(&sb, `
REQUIRED JSON STRUCTURE:
{
  "new_place": "Exact Name of Real Place in %s",
  "description": "Why this is a good alternative"
}

Return ONLY the JSON object - nothing else.
`, req.Location.City)

	return sb.String()
}

// BuildChatPrompt renders a free-form conversational request. The reply is
// not expected to be JSON.
func BuildChatPrompt(message string, context map[string]any) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "User message: %s\n", message)
	if len(context) > 0 {
		if ctxJSON, err := json.Marshal(context); err == nil {
			fmt.Fprintf(&sb, "\nContext: %s\n", ctxJSON)
		}
	}
	sb.WriteString("\nRespond as TripGenie PRO MAX with helpful travel advice.\n")

	return sb.String()
}

// BuildAdjustItineraryPrompt asks the model to revise an existing itinerary
// according to the user's request, keeping the itinerary JSON shape.
func BuildAdjustItineraryPrompt(req request_models.AdjustItineraryRequest) string {
	var sb strings.Builder

	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nITINERARY ADJUSTMENT REQUEST\n\n")

	fmt.Fprintf(&sb, "USER REQUEST: %s\n\n", req.UserMessage)
	fmt.Fprintf(&sb, "LOCATION: %s\n", req.Location.City)
	if req.UserPreferences != nil {
		fmt.Fprintf(&sb, "USER INTERESTS: %s\n", joinOrNone(req.UserPreferences.Interests))
	}

	if itinJSON, err := json.Marshal(req.CurrentItinerary); err == nil {
		fmt.Fprintf(&sb, "\nCURRENT ITINERARY:\n%s\n", itinJSON)
	}

	sb.WriteString(`
Adjust the itinerary according to the user's request. Keep every place that
the user did not ask to change. Use REAL places only.

REQUIRED JSON STRUCTURE:
{
  "acknowledgment": "Short confirmation of what was changed",
  "recommendation": "Optional extra suggestion",
  "days": [ ...same structure as the current itinerary... ],
  "cafes": [...],
  "medical": [...],
  "tips": [...]
}

Return ONLY the JSON object - nothing else.
`)

	return sb.String()
}
