package maps_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripgenie/internal/api/controllers"
	"tripgenie/internal/services"
)

var Module = fx.Provide(
	ProvideMapsService,
	ProvideMapsController)

// ProvideMapsService wires the Google Maps client. Without an API key the
// service is nil; geocode enrichment is skipped and the maps endpoints
// answer 503.
func ProvideMapsService() (services.MapsServiceInterface, error) {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, maps features disabled")
		return nil, nil
	}
	return services.NewMapsService(apiKey)
}

func ProvideMapsController(
	mapsService services.MapsServiceInterface,
) *controllers.MapsController {
	return controllers.NewMapsController(mapsService)
}
