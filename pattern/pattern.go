// Package pattern holds a catalog of classic Game of Life configurations as
// named sets of relative (row, col) offsets, plus placement onto a grid.
package pattern

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/lifesim/go-life/model"
)

var (
	// ErrUnknownPattern is returned when a name has no catalog entry
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrPatternOutOfBounds is returned when a placement would exceed grid bounds
	ErrPatternOutOfBounds = errors.New("pattern placement out of bounds")
)

// catalog maps pattern names to offsets relative to the placement corner
var catalog = map[string][]model.Coord{
	// still life
	"block": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	},

	// period-2 oscillators
	"blinker": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	},
	"toad": {
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	},
	"beacon": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 2}, {Row: 3, Col: 3},
	},

	// period-3 oscillator, 13×13 footprint
	"pulsar": {
		{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 8}, {Row: 0, Col: 9}, {Row: 0, Col: 10},
		{Row: 2, Col: 0}, {Row: 2, Col: 5}, {Row: 2, Col: 7}, {Row: 2, Col: 12},
		{Row: 3, Col: 0}, {Row: 3, Col: 5}, {Row: 3, Col: 7}, {Row: 3, Col: 12},
		{Row: 4, Col: 0}, {Row: 4, Col: 5}, {Row: 4, Col: 7}, {Row: 4, Col: 12},
		{Row: 5, Col: 2}, {Row: 5, Col: 3}, {Row: 5, Col: 4}, {Row: 5, Col: 8}, {Row: 5, Col: 9}, {Row: 5, Col: 10},
		{Row: 7, Col: 2}, {Row: 7, Col: 3}, {Row: 7, Col: 4}, {Row: 7, Col: 8}, {Row: 7, Col: 9}, {Row: 7, Col: 10},
		{Row: 8, Col: 0}, {Row: 8, Col: 5}, {Row: 8, Col: 7}, {Row: 8, Col: 12},
		{Row: 9, Col: 0}, {Row: 9, Col: 5}, {Row: 9, Col: 7}, {Row: 9, Col: 12},
		{Row: 10, Col: 0}, {Row: 10, Col: 5}, {Row: 10, Col: 7}, {Row: 10, Col: 12},
		{Row: 12, Col: 2}, {Row: 12, Col: 3}, {Row: 12, Col: 4}, {Row: 12, Col: 8}, {Row: 12, Col: 9}, {Row: 12, Col: 10},
	},

	// spaceships
	"glider": {
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	},
	"lwss": {
		{Row: 0, Col: 1}, {Row: 0, Col: 4},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0}, {Row: 2, Col: 4},
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	},

	// methuselah
	"r-pentomino": {
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 1},
	},
}

// Names returns the sorted list of catalog pattern names
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named pattern's relative offsets
func Lookup(name string) ([]model.Coord, error) {
	offsets, ok := catalog[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	coords := make([]model.Coord, len(offsets))
	copy(coords, offsets)
	return coords, nil
}

// Place seeds the grid with the named pattern, translating its offsets by
// the given placement corner. Every translated cell is validated against
// the grid bounds before anything is written, so a failed placement leaves
// the grid exactly as it was. Placement replaces the previous grid state.
func Place(g *model.Grid, name string, offset model.Coord) error {
	coords, err := Lookup(name)
	if err != nil {
		return err
	}

	for i, c := range coords {
		coords[i] = model.Coord{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
	}
	for _, c := range coords {
		if c.Row < 0 || c.Row >= g.GetRows() || c.Col < 0 || c.Col >= g.GetCols() {
			return errors.Wrapf(ErrPatternOutOfBounds,
				"[Place] %q at (%d,%d): cell (%d,%d) outside %dx%d grid",
				name, offset.Row, offset.Col, c.Row, c.Col, g.GetRows(), g.GetCols())
		}
	}

	return g.Populate(coords)
}
