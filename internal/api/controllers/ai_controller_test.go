package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie/internal/services"
)

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) GenerateText(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newAIRouter(stub *scriptedLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewAIController(services.NewAIService(stub, nil, nil))

	r := gin.New()
	ai := r.Group("/api/ai")
	ai.GET("/test", controller.TestHandler)
	ai.POST("/trip-plan", controller.GenerateTripPlanHandler)
	ai.POST("/shuffle", controller.ShuffleHandler)
	ai.POST("/chat", controller.ChatHandler)
	ai.POST("/adjust-itinerary", controller.AdjustItineraryHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestTestEndpoint(t *testing.T) {
	r := newAIRouter(&scriptedLLM{})

	w, envelope := doJSON(t, r, http.MethodGet, "/api/ai/test", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, "AI routes are working!", data["message"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestTripPlanEndpointSuccess(t *testing.T) {
	stub := &scriptedLLM{reply: `{"days":[{"day":1,"places":[{"name":"Gateway of India","type":"monument","description":"Iconic","timing":"Morning","transport":"Cab","distance":"2 km"}]}]}`}
	r := newAIRouter(stub)

	body := `{"location":{"city":"Mumbai"},"duration":2,"userPreferences":{"interests":["history"],"budget":5000,"pace":"relaxed","foodPreference":[],"travelStyle":[]}}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/trip-plan", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.Len(t, data["days"], 1)
	// optional collections come back as empty arrays, not null
	assert.Equal(t, []any{}, data["cafes"])
	assert.Equal(t, []any{}, data["medical"])
	assert.Equal(t, []any{}, data["tips"])
}

func TestTripPlanEndpointValidation(t *testing.T) {
	r := newAIRouter(&scriptedLLM{})

	tests := []struct {
		name string
		body string
	}{
		{"missing city", `{"location":{},"duration":2,"userPreferences":{}}`},
		{"zero duration", `{"location":{"city":"Mumbai"},"duration":0,"userPreferences":{}}`},
		{"malformed json", `{"location":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/trip-plan", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, envelope["success"])
			assert.NotEmpty(t, envelope["error"])
		})
	}
}

func TestTripPlanEndpointUnusableModelReply(t *testing.T) {
	stub := &scriptedLLM{reply: "no json here"}
	r := newAIRouter(stub)

	body := `{"location":{"city":"Mumbai"},"duration":2,"userPreferences":{}}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/trip-plan", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.NotEmpty(t, envelope["error"])
}

func TestShuffleEndpoint(t *testing.T) {
	stub := &scriptedLLM{reply: `{"new_place":"Haji Ali Dargah","description":"Also on the waterfront"}`}
	r := newAIRouter(stub)

	body := `{"placeName":"Gateway of India","placeType":"monument","location":{"city":"Mumbai"},"userPreferences":{}}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/shuffle", body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Haji Ali Dargah", data["new_place"])
}

func TestShuffleEndpointRequiresPlaceName(t *testing.T) {
	r := newAIRouter(&scriptedLLM{})

	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/shuffle", `{"location":{"city":"Mumbai"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestChatEndpoint(t *testing.T) {
	stub := &scriptedLLM{reply: "Pack an umbrella, monsoon season."}
	r := newAIRouter(stub)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/chat", `{"message":"what should I pack?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Pack an umbrella, monsoon season.", data["message"])
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	r := newAIRouter(&scriptedLLM{})

	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/chat", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestAdjustItineraryEndpointRequiresFields(t *testing.T) {
	r := newAIRouter(&scriptedLLM{})

	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/adjust-itinerary", `{"userMessage":"more beaches"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, envelope["error"], "Missing required fields")
}

func TestAdjustItineraryEndpointSuccess(t *testing.T) {
	stub := &scriptedLLM{reply: `{"acknowledgment":"Done","days":[]}`}
	r := newAIRouter(stub)

	body := `{"userMessage":"more beaches","currentItinerary":{"days":[]},"location":{"city":"Mumbai"}}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/ai/adjust-itinerary", body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Done", data["acknowledgment"])
	assert.Equal(t, []any{}, data["days"])
	assert.Equal(t, []any{}, data["cafes"])
}
