package lvt

import (
	"fmt"
	"math/rand"
)

// A CoordinateSource assigns a coordinate to every row of a table, in row
// order.
type CoordinateSource interface {
	Coordinates(t *Table) ([]Coordinate, error)
}

// Rough bounding box of Scotland.
const (
	MinLatitude  = 54.5
	MaxLatitude  = 60.5
	MinLongitude = -7.5
	MaxLongitude = -0.5
)

// UniformSource is a placeholder for real property coordinates. It draws
// latitudes and longitudes uniformly from the bounding box, all latitudes
// first and then all longitudes, so the result depends only on Seed and the
// number of rows.
type UniformSource struct {
	Seed int64
}

func (s UniformSource) Coordinates(t *Table) ([]Coordinate, error) {
	rnd := rand.New(rand.NewSource(s.Seed))
	coords := make([]Coordinate, t.Len())
	for i := range coords {
		coords[i].Latitude = uniform(rnd, MinLatitude, MaxLatitude)
	}
	for i := range coords {
		coords[i].Longitude = uniform(rnd, MinLongitude, MaxLongitude)
	}
	return coords, nil
}

func uniform(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

// LookupSource resolves coordinates by property label. Labels without a
// known coordinate are an error.
type LookupSource map[string]Coordinate

func (s LookupSource) Coordinates(t *Table) ([]Coordinate, error) {
	col, err := t.Column(ColLabel)
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, t.Len())
	for i := range coords {
		label := t.Cell(i, col)
		c, ok := s[label]
		if !ok {
			return nil, fmt.Errorf("no coordinates for property %q", label)
		}
		coords[i] = c
	}
	return coords, nil
}
