package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripgenie/internal/models/db_models"
)

type TripRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Trip, error)
	GetByID(ctx context.Context, id string) (*db_models.Trip, error)
	Create(ctx context.Context, trip *db_models.Trip) error
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id string) error

	ListAttractions(ctx context.Context, tripID string) ([]db_models.Attraction, error)
	CreateAttraction(ctx context.Context, attraction *db_models.Attraction) error
	UpvoteAttraction(ctx context.Context, id string) (*db_models.Attraction, error)

	ListRestaurants(ctx context.Context, tripID string) ([]db_models.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *db_models.Restaurant) error

	ListNearbyPlaces(ctx context.Context, tripID, category string) ([]db_models.NearbyPlace, error)
	UpvoteNearbyPlace(ctx context.Context, id string) (*db_models.NearbyPlace, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (t *tripRepository) GetByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

func (t *tripRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
}

func (t *tripRepository) ListAttractions(ctx context.Context, tripID string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := t.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day, created_at").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (t *tripRepository) CreateAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	return t.db.WithContext(ctx).Create(attraction).Error
}

func (t *tripRepository) UpvoteAttraction(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&attraction, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&attraction).
			UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (t *tripRepository) ListRestaurants(ctx context.Context, tripID string) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	err := t.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day, created_at").
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (t *tripRepository) CreateRestaurant(ctx context.Context, restaurant *db_models.Restaurant) error {
	return t.db.WithContext(ctx).Create(restaurant).Error
}

func (t *tripRepository) ListNearbyPlaces(ctx context.Context, tripID, category string) ([]db_models.NearbyPlace, error) {
	var places []db_models.NearbyPlace
	q := t.db.WithContext(ctx).Where("trip_id = ?", tripID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at").Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (t *tripRepository) UpvoteNearbyPlace(ctx context.Context, id string) (*db_models.NearbyPlace, error) {
	var place db_models.NearbyPlace
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&place, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&place).
			UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}
