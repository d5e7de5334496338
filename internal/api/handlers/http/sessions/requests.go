package sessions

import (
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/validator"

	"github.com/google/uuid"
)

// LocationBody is the wire form of a location fix. Coordinates are pointers so a
// missing field is told apart from the equator or the prime meridian.
type LocationBody struct {
	Latitude         *float64 `json:"latitude" validate:"required,lat"`
	Longitude        *float64 `json:"longitude" validate:"required,lng"`
	Accuracy         float64  `json:"accuracy"`
	Altitude         float64  `json:"altitude"`
	AltitudeAccuracy float64  `json:"altitude_accuracy"`
	Heading          float64  `json:"heading"`
	Speed            float64  `json:"speed"`
}

type StartSessionBody struct {
	UserID          uuid.UUID     `json:"user_id"`
	SportID         uuid.UUID     `json:"sport_id"`
	StartedAt       time.Time     `json:"started_at"`
	InitialLocation *LocationBody `json:"initial_location"`
}

func (b LocationBody) toDomain() domain.LocationInput {
	return domain.LocationInput{
		Latitude:         *b.Latitude,
		Longitude:        *b.Longitude,
		Accuracy:         b.Accuracy,
		Altitude:         b.Altitude,
		AltitudeAccuracy: b.AltitudeAccuracy,
		Heading:          b.Heading,
		Speed:            b.Speed,
	}
}

func parseLocation(b LocationBody) (domain.LocationInput, error) {
	if err := validator.ValidateStruct(b); err != nil {
		return domain.LocationInput{}, err
	}
	return b.toDomain(), nil
}

// parseStart checks only the optional initial location; the remaining fields
// are validated by the session service.
func parseStart(b StartSessionBody) (domain.StartSessionRequest, error) {
	req := domain.StartSessionRequest{
		UserID:    b.UserID,
		SportID:   b.SportID,
		StartedAt: b.StartedAt,
	}
	if b.InitialLocation != nil {
		if err := validator.ValidateStruct(b); err != nil {
			return req, err
		}
		loc := b.InitialLocation.toDomain()
		req.InitialLocation = &loc
	}
	return req, nil
}
