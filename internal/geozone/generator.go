package geozone

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const DefaultMaxAttemptsPerPoint = 10_000

var (
	ErrInvalidPolygon    = fmt.Errorf("polygon needs at least 3 distinct vertices and a positive area: %w", e.ErrInvalidInput)
	ErrSamplingExhausted = fmt.Errorf("no point accepted within the attempt limit: %w", e.ErrInvalidInput)
)

// FallbackBoundary outlines Santiago de Cali.
var FallbackBoundary = domain.Polygon{
	{Latitude: 3.1194990575, Longitude: -76.8635495958},
	{Latitude: 3.8006769776, Longitude: -76.8642836451},
	{Latitude: 3.8015092147, Longitude: -76.0888693083},
	{Latitude: 3.1203318932, Longitude: -76.088135259},
	{Latitude: 3.1194990575, Longitude: -76.8635495958},
}

type Config struct {
	MaxIncidents        int
	AffectedRange       float64
	MaxAttemptsPerPoint int
	Fallback            domain.Polygon
}

// Generator draws incident zones. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	cfg     Config
	catalog []domain.IncidentCatalogEntry
}

func NewGenerator(cfg Config, rnd *rand.Rand) *Generator {
	if cfg.MaxIncidents < 1 {
		cfg.MaxIncidents = 1
	}
	if cfg.MaxAttemptsPerPoint <= 0 {
		cfg.MaxAttemptsPerPoint = DefaultMaxAttemptsPerPoint
	}
	if len(cfg.Fallback) == 0 {
		cfg.Fallback = FallbackBoundary
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rnd: rnd, cfg: cfg, catalog: Catalog()}
}

// Generate returns between 1 and MaxIncidents incidents inside boundary.
// An empty boundary means the fallback polygon.
func (g *Generator) Generate(boundary domain.Polygon) ([]domain.AdverseIncident, error) {
	const op = "geozone.Generator.Generate"

	g.mu.Lock()
	n := 1 + g.rnd.IntN(g.cfg.MaxIncidents)
	g.mu.Unlock()

	points, err := g.RandomPoints(n, boundary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	incidents := make([]domain.AdverseIncident, 0, len(points))
	for _, p := range points {
		entry := g.catalog[g.rnd.IntN(len(g.catalog))]
		incidents = append(incidents, domain.AdverseIncident{
			Description: entry.Description,
			BoundingBox: domain.NewBoundingBox(p, g.cfg.AffectedRange),
		})
	}
	return incidents, nil
}

// RandomPoints returns exactly n points uniformly distributed inside boundary,
// using rejection sampling over the boundary's bounding rectangle.
func (g *Generator) RandomPoints(n int, boundary domain.Polygon) ([]domain.GeoPoint, error) {
	if n < 1 {
		return nil, fmt.Errorf("point count %d: %w", n, e.ErrInvalidInput)
	}
	if len(boundary) == 0 {
		boundary = g.cfg.Fallback
	}
	ring, err := toRing(boundary)
	if err != nil {
		return nil, err
	}
	bound := ring.Bound()

	g.mu.Lock()
	defer g.mu.Unlock()

	points := make([]domain.GeoPoint, 0, n)
	budget := n * g.cfg.MaxAttemptsPerPoint
	for attempts := 0; len(points) < n; attempts++ {
		if attempts >= budget {
			return nil, ErrSamplingExhausted
		}
		candidate := orb.Point{
			bound.Min.X() + g.rnd.Float64()*(bound.Max.X()-bound.Min.X()),
			bound.Min.Y() + g.rnd.Float64()*(bound.Max.Y()-bound.Min.Y()),
		}
		if !planar.RingContains(ring, candidate) {
			continue
		}
		points = append(points, domain.GeoPoint{Latitude: candidate.Y(), Longitude: candidate.X()})
	}
	return points, nil
}

// toRing maps latitude to Y and longitude to X and closes the ring.
func toRing(p domain.Polygon) (orb.Ring, error) {
	ring := make(orb.Ring, 0, len(p)+1)
	distinct := make(map[orb.Point]struct{}, len(p))
	for _, gp := range p {
		if math.IsNaN(gp.Latitude) || math.IsNaN(gp.Longitude) {
			return nil, errors.Join(ErrInvalidPolygon, e.ErrInvalidCoordinates)
		}
		pt := orb.Point{gp.Longitude, gp.Latitude}
		distinct[pt] = struct{}{}
		ring = append(ring, pt)
	}
	if len(distinct) < 3 {
		return nil, ErrInvalidPolygon
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if math.Abs(planar.Area(ring)) == 0 {
		return nil, ErrInvalidPolygon
	}
	return ring, nil
}
