package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Days        int
	Budget      int
	TravelStyle string
	Interests   pq.StringArray `gorm:"type:text[]"`

	Attractions  []Attraction  `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Restaurants  []Restaurant  `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	NearbyPlaces []NearbyPlace `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

type Attraction struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Timing      string
	Rating      float64
	Reviews     int
	Category    string
	Day         int
	Upvotes     int `gorm:"default:0"`
}

type Restaurant struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Cuisine  string
	Rating   float64
	Reviews  int
	Price    int
	Day      int
	MealType string
	Upvotes  int `gorm:"default:0"`
}

type NearbyPlace struct {
	BaseModel
	TripID     uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Category   string
	Rating     float64
	Reviews    int
	PriceLevel string
	Distance   string
	Upvotes    int `gorm:"default:0"`
}
