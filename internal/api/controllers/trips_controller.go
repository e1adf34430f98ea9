package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/services"
	"tripgenie/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

func (t *TripsController) ListTripsHandler(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips)
}

func (t *TripsController) GetTripHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := t.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip)
}

func (t *TripsController) CreateTripHandler(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip)
}

func (t *TripsController) UpdateTripHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip)
}

func (t *TripsController) DeleteTripHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := t.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"message": "Trip deleted"})
}

func (t *TripsController) ListAttractionsHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	attractions, err := t.tripService.ListAttractions(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions)
}

func (t *TripsController) CreateAttractionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := t.tripService.CreateAttraction(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction)
}

func (t *TripsController) UpvoteAttractionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	attraction, err := t.tripService.UpvoteAttraction(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction)
}

func (t *TripsController) ListRestaurantsHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	restaurants, err := t.tripService.ListRestaurants(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurants)
}

func (t *TripsController) CreateRestaurantHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	restaurant, err := t.tripService.CreateRestaurant(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant)
}

func (t *TripsController) ListNearbyPlacesHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	places, err := t.tripService.ListNearbyPlaces(c.Request.Context(), id, c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places)
}

func (t *TripsController) UpvoteNearbyPlaceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	place, err := t.tripService.UpvoteNearbyPlace(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place)
}

func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id, true
}
