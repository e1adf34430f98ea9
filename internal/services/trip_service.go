package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tripgenie/internal/models/db_models"
	"tripgenie/internal/models/request_models"
	"tripgenie/internal/models/response_models"
	"tripgenie/internal/repositories"
	"tripgenie/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, id string) (*response_models.TripResponse, error)
	CreateTrip(ctx context.Context, accountID string, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, id string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, id string) error

	ListAttractions(ctx context.Context, tripID string) ([]response_models.AttractionResponse, error)
	CreateAttraction(ctx context.Context, tripID string, req request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error)
	UpvoteAttraction(ctx context.Context, id string) (*response_models.AttractionResponse, error)

	ListRestaurants(ctx context.Context, tripID string) ([]response_models.RestaurantResponse, error)
	CreateRestaurant(ctx context.Context, tripID string, req request_models.CreateRestaurantRequest) (*response_models.RestaurantResponse, error)

	ListNearbyPlaces(ctx context.Context, tripID, category string) ([]response_models.NearbyPlaceResponse, error)
	UpvoteNearbyPlace(ctx context.Context, id string) (*response_models.NearbyPlaceResponse, error)
}

type TripService struct {
	tripRepo   repositories.TripRepository
	embeddings repositories.PlaceEmbeddingRepository
}

func NewTripService(
	tripRepo repositories.TripRepository,
	embeddings repositories.PlaceEmbeddingRepository,
) TripServiceInterface {
	return &TripService{
		tripRepo:   tripRepo,
		embeddings: embeddings,
	}
}

func (t *TripService) ListTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, toTripResponse(&trip))
	}
	return responses, nil
}

func (t *TripService) GetTrip(ctx context.Context, id string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	resp := toTripResponse(trip)
	return &resp, nil
}

func (t *TripService) CreateTrip(ctx context.Context, accountID string, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	trip := &db_models.Trip{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		TravelStyle: req.TravelStyle,
		Interests:   req.Interests,
	}
	if parsed, err := uuid.Parse(accountID); err == nil {
		trip.AccountID = parsed
	}

	if err := t.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(trip)
	return &resp, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, id string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.Destination != "" {
		trip.Destination = req.Destination
	}
	if req.Days > 0 {
		trip.Days = req.Days
	}
	if req.Budget > 0 {
		trip.Budget = req.Budget
	}
	if req.TravelStyle != "" {
		trip.TravelStyle = req.TravelStyle
	}
	if req.Interests != nil {
		trip.Interests = req.Interests
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, id string) error {
	trip, err := t.tripRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := t.tripRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) ListAttractions(ctx context.Context, tripID string) ([]response_models.AttractionResponse, error) {
	attractions, err := t.tripRepo.ListAttractions(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		responses = append(responses, toAttractionResponse(&a))
	}
	return responses, nil
}

func (t *TripService) CreateAttraction(ctx context.Context, tripID string, req request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	attraction := &db_models.Attraction{
		TripID:      trip.ID,
		Name:        req.Name,
		Description: req.Description,
		Timing:      req.Timing,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Category:    req.Category,
		Day:         req.Day,
	}
	if err := t.tripRepo.CreateAttraction(ctx, attraction); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.indexAttraction(ctx, attraction)

	resp := toAttractionResponse(attraction)
	return &resp, nil
}

func (t *TripService) UpvoteAttraction(ctx context.Context, id string) (*response_models.AttractionResponse, error) {
	attraction, err := t.tripRepo.UpvoteAttraction(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrPlaceNotFound
	}

	attraction.Upvotes++
	resp := toAttractionResponse(attraction)
	return &resp, nil
}

func (t *TripService) ListRestaurants(ctx context.Context, tripID string) ([]response_models.RestaurantResponse, error) {
	restaurants, err := t.tripRepo.ListRestaurants(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		responses = append(responses, toRestaurantResponse(&r))
	}
	return responses, nil
}

func (t *TripService) CreateRestaurant(ctx context.Context, tripID string, req request_models.CreateRestaurantRequest) (*response_models.RestaurantResponse, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	restaurant := &db_models.Restaurant{
		TripID:   trip.ID,
		Name:     req.Name,
		Cuisine:  req.Cuisine,
		Rating:   req.Rating,
		Reviews:  req.Reviews,
		Price:    req.Price,
		Day:      req.Day,
		MealType: req.MealType,
	}
	if err := t.tripRepo.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toRestaurantResponse(restaurant)
	return &resp, nil
}

func (t *TripService) ListNearbyPlaces(ctx context.Context, tripID, category string) ([]response_models.NearbyPlaceResponse, error) {
	places, err := t.tripRepo.ListNearbyPlaces(ctx, tripID, category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.NearbyPlaceResponse, 0, len(places))
	for _, p := range places {
		responses = append(responses, toNearbyPlaceResponse(&p))
	}
	return responses, nil
}

func (t *TripService) UpvoteNearbyPlace(ctx context.Context, id string) (*response_models.NearbyPlaceResponse, error) {
	place, err := t.tripRepo.UpvoteNearbyPlace(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	place.Upvotes++
	resp := toNearbyPlaceResponse(place)
	return &resp, nil
}

// indexAttraction stores an embedding row so the shuffle flow can suggest
// saved places as alternatives. Failures only degrade hints, never the save.
func (t *TripService) indexAttraction(ctx context.Context, attraction *db_models.Attraction) {
	if t.embeddings == nil {
		return
	}

	embedding := db_models.PlaceEmbedding{
		PlaceID:   attraction.ID.String(),
		Name:      attraction.Name,
		Category:  attraction.Category,
		TripID:    attraction.TripID.String(),
		Embedding: utils.TextToVector(attraction.Name + " " + attraction.Description),
	}
	if err := t.embeddings.Upsert(ctx, embedding); err != nil {
		log.Printf("place embedding upsert failed for %s: %v", attraction.Name, err)
	}
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Days:        trip.Days,
		Budget:      trip.Budget,
		TravelStyle: trip.TravelStyle,
		Interests:   trip.Interests,
	}
}

func toAttractionResponse(a *db_models.Attraction) response_models.AttractionResponse {
	return response_models.AttractionResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Timing:      a.Timing,
		Rating:      a.Rating,
		Reviews:     a.Reviews,
		Category:    a.Category,
		Day:         a.Day,
		Upvotes:     a.Upvotes,
	}
}

func toRestaurantResponse(r *db_models.Restaurant) response_models.RestaurantResponse {
	return response_models.RestaurantResponse{
		ID:       r.ID.String(),
		Name:     r.Name,
		Cuisine:  r.Cuisine,
		Rating:   r.Rating,
		Reviews:  r.Reviews,
		Price:    r.Price,
		Day:      r.Day,
		MealType: r.MealType,
		Upvotes:  r.Upvotes,
	}
}

func toNearbyPlaceResponse(p *db_models.NearbyPlace) response_models.NearbyPlaceResponse {
	return response_models.NearbyPlaceResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Category:   p.Category,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		PriceLevel: p.PriceLevel,
		Distance:   p.Distance,
		Upvotes:    p.Upvotes,
	}
}
