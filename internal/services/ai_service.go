package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/models/response_models"
	"tripgenie/internal/repositories"
	"tripgenie/pkg/jsonrepair"
	"tripgenie/pkg/llm"
	"tripgenie/pkg/utils"
)

type AIServiceInterface interface {
	GenerateTripPlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.TripPlan, error)
	ShufflePlace(ctx context.Context, req request_models.ShuffleRequest) (*response_models.ShuffleResult, error)
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatReply, error)
	AdjustItinerary(ctx context.Context, req request_models.AdjustItineraryRequest) (*response_models.AdjustedItinerary, error)
}

// AIService drives the prompt -> model -> repair -> validate pipeline for
// every AI endpoint. The maps service and embedding repo are optional
// collaborators; both are skipped when nil and their failures never abort a
// generation.
type AIService struct {
	llmClient   llm.Client
	mapsService MapsServiceInterface
	embeddings  repositories.PlaceEmbeddingRepository
}

func NewAIService(
	llmClient llm.Client,
	mapsService MapsServiceInterface,
	embeddings repositories.PlaceEmbeddingRepository,
) AIServiceInterface {
	return &AIService{
		llmClient:   llmClient,
		mapsService: mapsService,
		embeddings:  embeddings,
	}
}

func (s *AIService) GenerateTripPlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.TripPlan, error) {
	s.enrichLocation(ctx, &req)

	prompt := BuildTripPlannerPrompt(req)

	raw, err := s.llmClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan response_models.TripPlan
	stage, err := jsonrepair.Parse(raw, &plan)
	if err != nil {
		return nil, err
	}
	log.Printf("trip plan parsed at %s stage (response length %d)", stage, len(raw))

	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("%w: response is missing trip days", utils.ErrInvalidShape)
	}
	if plan.Cafes == nil {
		plan.Cafes = []response_models.Cafe{}
	}
	if plan.Medical == nil {
		plan.Medical = []string{}
	}
	if plan.Tips == nil {
		plan.Tips = []string{}
	}

	return &plan, nil
}

func (s *AIService) ShufflePlace(ctx context.Context, req request_models.ShuffleRequest) (*response_models.ShuffleResult, error) {
	candidates := s.similarPlaceHints(ctx, req)

	prompt := BuildShufflePrompt(req, candidates)

	raw, err := s.llmClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result response_models.ShuffleResult
	stage, err := jsonrepair.Parse(raw, &result)
	if err != nil {
		return nil, err
	}
	log.Printf("shuffle parsed at %s stage", stage)

	if result.NewPlace == "" {
		return nil, fmt.Errorf("%w: response is missing new_place", utils.ErrInvalidShape)
	}

	return &result, nil
}

func (s *AIService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatReply, error) {
	prompt := BuildChatPrompt(req.Message, req.Context)

	raw, err := s.llmClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// chat replies are conversational text, never parsed as JSON
	return &response_models.ChatReply{Message: raw}, nil
}

func (s *AIService) AdjustItinerary(ctx context.Context, req request_models.AdjustItineraryRequest) (*response_models.AdjustedItinerary, error) {
	prompt := BuildAdjustItineraryPrompt(req)

	raw, err := s.llmClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var adjusted response_models.AdjustedItinerary
	stage, err := jsonrepair.Parse(raw, &adjusted)
	if err != nil {
		return nil, err
	}
	log.Printf("itinerary adjustment parsed at %s stage", stage)

	if adjusted.Days == nil {
		adjusted.Days = []response_models.DayPlan{}
	}
	if adjusted.Cafes == nil {
		adjusted.Cafes = []response_models.Cafe{}
	}
	if adjusted.Medical == nil {
		adjusted.Medical = []string{}
	}
	if adjusted.Tips == nil {
		adjusted.Tips = []string{}
	}

	return &adjusted, nil
}

// enrichLocation fills in coordinates and a formatted address via geocoding.
// A failure here only loses prompt context, so it is logged and ignored.
func (s *AIService) enrichLocation(ctx context.Context, req *request_models.TripPlanRequest) {
	if s.mapsService == nil || req.Location.City == "" || req.Location.Geotag != nil {
		return
	}

	result, err := s.mapsService.Geocode(ctx, req.Location.City)
	if err != nil {
		log.Printf("geocode enrichment failed for %q: %v", req.Location.City, err)
		return
	}

	req.Location.Geotag = &request_models.Geotag{
		Latitude:  result.Coordinates.Lat,
		Longitude: result.Coordinates.Lng,
	}
	if req.Location.Address == "" {
		req.Location.Address = result.Address
	}
}

// similarPlaceHints looks up stored places near the shuffled one in embedding
// space and returns their names, minus the excluded ones.
func (s *AIService) similarPlaceHints(ctx context.Context, req request_models.ShuffleRequest) []string {
	if s.embeddings == nil {
		return nil
	}

	vector := utils.TextToVector(req.PlaceName + " " + req.PlaceType)
	similar, err := s.embeddings.ListSimilar(ctx, vector, 15)
	if err != nil {
		log.Printf("similar place lookup failed: %v", err)
		return nil
	}

	excluded := make(map[string]bool, len(req.Visited)+len(req.PreviouslyShown)+1)
	excluded[strings.ToLower(req.PlaceName)] = true
	for _, name := range req.Visited {
		excluded[strings.ToLower(name)] = true
	}
	for _, name := range req.PreviouslyShown {
		excluded[strings.ToLower(name)] = true
	}

	var hints []string
	for _, place := range similar {
		if excluded[strings.ToLower(place.Name)] {
			continue
		}
		hints = append(hints, place.Name)
		if len(hints) >= 5 {
			break
		}
	}
	return hints
}
