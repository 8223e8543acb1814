package outwriter

import (
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func plainConfig(mode schema.OutputMode) *contract.Config {
	return &contract.Config{Output: mode, Precision: 1, Width: 120}
}

func sampleLocationScores() []schema.LocationScore {
	return []schema.LocationScore{
		{
			LocationID: "loc-1",
			FoodSafety: schema.FoodSafetyScore{AuthorityScore: schema.AuthorityScore{
				Pillar:         schema.FoodSafety,
				JurisdictionID: "los_angeles",
				AgencyName:     "LA County DPH",
				GradingType:    schema.LetterGrade,
				Grade:          strPtr("A"),
				GradeDisplay:   "Grade A (91) PASS",
				NumericScore:   floatPtr(91),
				Status:         schema.PassingStatus,
				PassFail:       schema.Pass,
			}},
			FireSafety: schema.FireSafetyScore{AuthorityScore: schema.AuthorityScore{
				Pillar:         schema.FireSafety,
				JurisdictionID: "sacramento_fire",
				AgencyName:     "Sacramento Metro Fire",
				GradingType:    schema.PassReinspect,
				GradeDisplay:   "Not yet inspected",
				Status:         schema.UnknownStatus,
			}},
			Overlays: schema.OverlayScores{
				FoodSafety: &schema.AuthorityScore{
					Pillar:         schema.FoodSafety,
					JurisdictionID: "nps_food",
					AgencyName:     "National Park Service",
					GradingType:    schema.Score100,
					Grade:          strPtr("70"),
					GradeDisplay:   "70/100 FAIL",
					NumericScore:   floatPtr(70),
					Status:         schema.FailingStatus,
					PassFail:       schema.Fail,
					Federal:        true,
				},
			},
		},
	}
}
