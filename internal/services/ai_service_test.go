package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie/internal/models/request_models"
	"tripgenie/pkg/jsonrepair"
	"tripgenie/pkg/llm"
	"tripgenie/pkg/utils"
)

// scriptedLLM returns a canned reply and records the prompt it was given.
type scriptedLLM struct {
	reply     string
	err       error
	gotPrompt string
}

func (s *scriptedLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestAIService(client llm.Client) AIServiceInterface {
	return NewAIService(client, nil, nil)
}

func TestGenerateTripPlanBackfillsOptionalCollections(t *testing.T) {
	stub := &scriptedLLM{reply: `{"days":[{"day":1,"places":[{"name":"Gateway of India","type":"monument","description":"Iconic arch","timing":"Morning","transport":"Cab","distance":"2 km"}]}]}`}
	svc := newTestAIService(stub)

	plan, err := svc.GenerateTripPlan(context.Background(), tripPlanRequest())
	require.NoError(t, err)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Gateway of India", plan.Days[0].Places[0].Name)
	assert.NotNil(t, plan.Cafes)
	assert.Empty(t, plan.Cafes)
	assert.NotNil(t, plan.Medical)
	assert.NotNil(t, plan.Tips)
}

func TestGenerateTripPlanRepairsFencedReply(t *testing.T) {
	stub := &scriptedLLM{reply: "Here is your plan:\n```json\n{\"days\":[{\"day\":1,\"places\":[]}],\"tips\":[\"carry water\",]}\n```"}
	svc := newTestAIService(stub)

	plan, err := svc.GenerateTripPlan(context.Background(), tripPlanRequest())
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, []string{"carry water"}, plan.Tips)
}

func TestGenerateTripPlanMissingDaysIsShapeError(t *testing.T) {
	stub := &scriptedLLM{reply: `{"cafes":[],"medical":[],"tips":[]}`}
	svc := newTestAIService(stub)

	_, err := svc.GenerateTripPlan(context.Background(), tripPlanRequest())
	assert.ErrorIs(t, err, utils.ErrInvalidShape)
}

func TestGenerateTripPlanPropagatesBackendErrors(t *testing.T) {
	stub := &scriptedLLM{err: fmt.Errorf("%w: no API key configured", llm.ErrBackendUnavailable)}
	svc := newTestAIService(stub)

	_, err := svc.GenerateTripPlan(context.Background(), tripPlanRequest())
	assert.ErrorIs(t, err, llm.ErrBackendUnavailable)
}

func TestGenerateTripPlanUnusableReply(t *testing.T) {
	stub := &scriptedLLM{reply: "no json here"}
	svc := newTestAIService(stub)

	_, err := svc.GenerateTripPlan(context.Background(), tripPlanRequest())
	assert.ErrorIs(t, err, jsonrepair.ErrNoJSONFound)
}

func TestGenerateTripPlanSendsExclusionsToModel(t *testing.T) {
	stub := &scriptedLLM{reply: `{"days":[{"day":1,"places":[]}]}`}
	svc := newTestAIService(stub)

	req := tripPlanRequest()
	req.Visited = []string{"Gateway of India"}

	_, err := svc.GenerateTripPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, stub.gotPrompt, "Already visited: Gateway of India")
}

func TestShufflePlace(t *testing.T) {
	stub := &scriptedLLM{reply: `{"new_place":"Haji Ali Dargah","description":"Same category, on the water"}`}
	svc := newTestAIService(stub)

	result, err := svc.ShufflePlace(context.Background(), request_models.ShuffleRequest{
		PlaceName: "Gateway of India",
		PlaceType: "monument",
		Location:  request_models.LocationInfo{City: "Mumbai"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Haji Ali Dargah", result.NewPlace)
	assert.NotEmpty(t, result.Description)
}

func TestShufflePlaceMissingNewPlaceIsShapeError(t *testing.T) {
	stub := &scriptedLLM{reply: `{"description":"forgot the name"}`}
	svc := newTestAIService(stub)

	_, err := svc.ShufflePlace(context.Background(), request_models.ShuffleRequest{
		PlaceName: "Gateway of India",
		PlaceType: "monument",
		Location:  request_models.LocationInfo{City: "Mumbai"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidShape)
}

func TestChatReturnsRawText(t *testing.T) {
	stub := &scriptedLLM{reply: "Pack light cotton clothes and an umbrella."}
	svc := newTestAIService(stub)

	reply, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "what should I pack?"})
	require.NoError(t, err)
	assert.Equal(t, "Pack light cotton clothes and an umbrella.", reply.Message)
}

func TestAdjustItineraryBackfillsAndPassesThrough(t *testing.T) {
	stub := &scriptedLLM{reply: `{"acknowledgment":"Swapped day 2 for beaches","days":[{"day":1,"places":[]}]}`}
	svc := newTestAIService(stub)

	adjusted, err := svc.AdjustItinerary(context.Background(), request_models.AdjustItineraryRequest{
		UserMessage:      "more beaches please",
		CurrentItinerary: map[string]any{"days": []any{}},
		Location:         &request_models.LocationInfo{City: "Mumbai"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Swapped day 2 for beaches", adjusted.Acknowledgment)
	assert.Len(t, adjusted.Days, 1)
	assert.NotNil(t, adjusted.Cafes)
	assert.NotNil(t, adjusted.Medical)
	assert.NotNil(t, adjusted.Tips)
}
