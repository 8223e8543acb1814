package core

import (
	"fmt"

	"github.com/placardhq/placard/schema"
)

// Directory maps locations to their assigned authorities. It is read-only
// after construction and safe for concurrent use.
type Directory struct {
	order   []string
	entries map[string]schema.LocationJurisdiction
}

// NewDirectory builds a directory from jurisdiction assignments. Each record must
// carry its own pillar, and a location may only appear once.
func NewDirectory(assignments []schema.LocationJurisdiction) (*Directory, error) {
	d := &Directory{entries: make(map[string]schema.LocationJurisdiction, len(assignments))}
	for _, lj := range assignments {
		if lj.LocationID == "" {
			return nil, fmt.Errorf("jurisdiction assignment without location id")
		}
		if _, dup := d.entries[lj.LocationID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", lj.LocationID)
		}
		if err := checkRecord(lj.LocationID, lj.FoodSafety, schema.FoodSafety); err != nil {
			return nil, err
		}
		if err := checkRecord(lj.LocationID, lj.FireSafety, schema.FireSafety); err != nil {
			return nil, err
		}
		if lj.FederalFoodSafety != nil {
			if err := checkRecord(lj.LocationID, *lj.FederalFoodSafety, schema.FoodSafety); err != nil {
				return nil, err
			}
		}
		if lj.FederalFireSafety != nil {
			if err := checkRecord(lj.LocationID, *lj.FederalFireSafety, schema.FireSafety); err != nil {
				return nil, err
			}
		}
		d.entries[lj.LocationID] = lj.Clone()
		d.order = append(d.order, lj.LocationID)
	}
	return d, nil
}

func checkRecord(locationID string, rec schema.AuthorityRecord, want schema.Pillar) error {
	if rec.Pillar != want {
		return fmt.Errorf("location %q: %s authority is tagged %q", locationID, want, rec.Pillar)
	}
	return nil
}

// Lookup returns the authorities assigned to a location, or nil when the
// location has no jurisdiction assigned yet. The result is a private copy.
func (d *Directory) Lookup(locationID string) *schema.LocationJurisdiction {
	lj, ok := d.entries[locationID]
	if !ok {
		return nil
	}
	clone := lj.Clone()
	return &clone
}

// LocationIDs returns every assigned location in insertion order.
func (d *Directory) LocationIDs() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// ScoreBook is an in-memory ScoreSource keyed by location id.
type ScoreBook map[string]schema.PillarScores

// Scores returns the pillar scores recorded for a location.
func (b ScoreBook) Scores(locationID string) schema.PillarScores {
	return b[locationID]
}
