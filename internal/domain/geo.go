package domain

import "math"

// GeoPoint is a WGS84 coordinate pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

type Polygon []GeoPoint

// BoundingBox is an axis-aligned degree box. Containment is closed on both axes.
type BoundingBox struct {
	LatitudeFrom  float64 `json:"latitude_from"`
	LongitudeFrom float64 `json:"longitude_from"`
	LatitudeTo    float64 `json:"latitude_to"`
	LongitudeTo   float64 `json:"longitude_to"`
}

// NewBoundingBox expands center by radius degrees on both axes, clamped to the valid range.
func NewBoundingBox(center GeoPoint, radius float64) BoundingBox {
	radius = math.Abs(radius)
	return BoundingBox{
		LatitudeFrom:  clamp(center.Latitude-radius, -90, 90),
		LongitudeFrom: clamp(center.Longitude-radius, -180, 180),
		LatitudeTo:    clamp(center.Latitude+radius, -90, 90),
		LongitudeTo:   clamp(center.Longitude+radius, -180, 180),
	}
}

func (b BoundingBox) Contains(lat, lng float64) bool {
	return b.LatitudeFrom <= lat && lat <= b.LatitudeTo &&
		b.LongitudeFrom <= lng && lng <= b.LongitudeTo
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
