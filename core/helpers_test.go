package core

import (
	"testing"

	"github.com/placardhq/placard/schema"
	"github.com/stretchr/testify/require"
)

// testProfiles returns a small catalog covering both pillars and several schemes.
func testProfiles() []schema.JurisdictionProfile {
	return []schema.JurisdictionProfile{
		{
			ID: "riverside", County: "Riverside", AgencyName: "Riverside County Environmental Health",
			Pillar: schema.FoodSafety, ScoringType: schema.WeightedDeduction,
			Grading: schema.StrictLetterGradeConfig{PassRequires: "A"},
		},
		{
			ID: "los_angeles", County: "Los Angeles", AgencyName: "LA County Environmental Health",
			Pillar: schema.FoodSafety, ScoringType: schema.WeightedDeduction,
			Grading: schema.LetterGradeConfig{},
		},
		{
			ID: "maricopa", County: "Maricopa", AgencyName: "Maricopa County Environmental Services",
			Pillar: schema.FoodSafety, ScoringType: schema.NegativeScale,
			Grading: schema.NegativeScaleConfig{},
		},
		{
			ID: "sacramento_fire", County: "Sacramento", AgencyName: "Sacramento Metropolitan Fire District",
			Pillar: schema.FireSafety, ScoringType: schema.MajorMinorReinspect,
			Grading: schema.PassReinspectConfig{},
		},
		{
			ID: "nps_food", County: "Yosemite", AgencyName: "National Park Service Public Health",
			Pillar: schema.FoodSafety, ScoringType: schema.WeightedDeduction,
			Grading: schema.Score100Config{}, PassThreshold: schema.Float(75),
		},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testProfiles())
	require.NoError(t, err)
	return c
}

func foodRecord(id string) schema.AuthorityRecord {
	return schema.AuthorityRecord{Pillar: schema.FoodSafety, JurisdictionID: id, CodeBasis: "CalCode", Verified: true}
}

func fireRecord(id string) schema.AuthorityRecord {
	return schema.AuthorityRecord{Pillar: schema.FireSafety, JurisdictionID: id, CodeBasis: "CFC", Verified: true}
}

// testAssignments returns one plain location, one co-regulated location and one
// location assigned to a jurisdiction missing from the catalog.
func testAssignments() []schema.LocationJurisdiction {
	overlay := foodRecord("nps_food")
	overlay.Federal = true
	return []schema.LocationJurisdiction{
		{LocationID: "loc-1", LocationName: "Taqueria", FoodSafety: foodRecord("riverside"), FireSafety: fireRecord("sacramento_fire")},
		{LocationID: "loc-2", LocationName: "Lodge Grill", FoodSafety: foodRecord("los_angeles"), FireSafety: fireRecord("sacramento_fire"), FederalFoodSafety: &overlay},
		{LocationID: "loc-3", LocationName: "Pop-up", FoodSafety: foodRecord("atlantis"), FireSafety: fireRecord("sacramento_fire")},
	}
}

func testScores() ScoreBook {
	return ScoreBook{
		"loc-1": {FoodSafety: schema.Float(88), FireSafety: schema.Float(96)},
		"loc-2": {FoodSafety: schema.Float(91), FederalFoodSafety: schema.Float(70)},
		"loc-3": {FoodSafety: schema.Float(95), FireSafety: schema.Float(55)},
	}
}

// warnRecorder collects warnings instead of writing them to stderr.
type warnRecorder struct {
	messages []string
}

func (w *warnRecorder) warn(msg string, err error) {
	w.messages = append(w.messages, msg+": "+err.Error())
}

func testEngine(t *testing.T) (*Engine, *warnRecorder) {
	t.Helper()
	dir, err := NewDirectory(testAssignments())
	require.NoError(t, err)
	rec := &warnRecorder{}
	engine, err := NewEngine(testCatalog(t), dir, testScores(), WithWarnFunc(rec.warn))
	require.NoError(t, err)
	return engine, rec
}
