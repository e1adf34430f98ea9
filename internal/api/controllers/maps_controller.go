package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripgenie/internal/services"
	"tripgenie/pkg/utils"
)

type MapsController struct {
	mapsService services.MapsServiceInterface
}

func NewMapsController(mapsService services.MapsServiceInterface) *MapsController {
	return &MapsController{
		mapsService: mapsService,
	}
}

func (m *MapsController) GeocodeHandler(c *gin.Context) {
	if !m.available(c) {
		return
	}
	address := c.Query("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "address query parameter is required")
		return
	}

	result, err := m.mapsService.Geocode(c.Request.Context(), address)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result)
}

func (m *MapsController) ReverseGeocodeHandler(c *gin.Context) {
	if !m.available(c) {
		return
	}
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}

	result, err := m.mapsService.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result)
}

func (m *MapsController) SearchHandler(c *gin.Context) {
	if !m.available(c) {
		return
	}
	query := c.Query("query")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "query parameter is required")
		return
	}

	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}

	results, err := m.mapsService.SearchPlaces(c.Request.Context(), query, lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, results)
}

func (m *MapsController) DirectionsHandler(c *gin.Context) {
	if !m.available(c) {
		return
	}
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination query parameters are required")
		return
	}

	result, err := m.mapsService.Directions(c.Request.Context(), origin, destination, c.Query("mode"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result)
}

// available guards against a missing GOOGLE_MAPS_API_KEY, where the service
// is wired as nil and the endpoints answer 503 instead of panicking.
func (m *MapsController) available(c *gin.Context) bool {
	if m.mapsService == nil {
		utils.HandleServiceError(c, utils.ErrMapsUnavailable)
		return false
	}
	return true
}
