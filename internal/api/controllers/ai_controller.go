package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/services"
	"tripgenie/pkg/utils"
)

type AIController struct {
	aiService services.AIServiceInterface
}

func NewAIController(aiService services.AIServiceInterface) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// TestHandler is a liveness check for the AI route group.
func (a *AIController) TestHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"message":   "AI routes are working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *AIController) GenerateTripPlanHandler(c *gin.Context) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Location.City == "" {
		utils.RespondError(c, http.StatusBadRequest, "location.city is required")
		return
	}
	if req.Duration < 1 {
		utils.RespondError(c, http.StatusBadRequest, "duration must be a positive number of days")
		return
	}

	plan, err := a.aiService.GenerateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan)
}

func (a *AIController) ShuffleHandler(c *gin.Context) {
	var req request_models.ShuffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.PlaceName == "" || req.Location.City == "" {
		utils.RespondError(c, http.StatusBadRequest, "placeName and location.city are required")
		return
	}

	result, err := a.aiService.ShufflePlace(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}

func (a *AIController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.aiService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply)
}

func (a *AIController) AdjustItineraryHandler(c *gin.Context) {
	var req request_models.AdjustItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.UserMessage == "" || req.CurrentItinerary == nil || req.Location == nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: userMessage, currentItinerary, location")
		return
	}

	adjusted, err := a.aiService.AdjustItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, adjusted)
}
