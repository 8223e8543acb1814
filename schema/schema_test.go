package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		pf   PassFail
		want Status
	}{
		{Pass, PassingStatus},
		{Warning, AtRiskStatus},
		{Fail, FailingStatus},
		{"", UnknownStatus},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.pf))
		})
	}
}

func TestProfileGradingType(t *testing.T) {
	assert.Equal(t, ReportOnly, JurisdictionProfile{}.GradingType())
	assert.Equal(t, LetterGradeStrict, JurisdictionProfile{Grading: StrictLetterGradeConfig{}}.GradingType())
}

func TestGradingDefaults(t *testing.T) {
	t.Run("letter", func(t *testing.T) {
		assert.Equal(t, DefaultLetterBands(), LetterGradeConfig{}.Bands())
		assert.Equal(t, 70.0, LetterGradeConfig{}.FailThreshold())

		custom := LetterGradeConfig{Grades: &LetterBandOverrides{A: Float(93), B: Float(85), C: Float(75)}, FailBelow: Float(75)}
		assert.Equal(t, 93.0, custom.Bands().A)
		assert.Equal(t, 75.0, custom.FailThreshold())
	})

	t.Run("partial keys", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  GradingConfig
			want any
			got  func(GradingConfig) any
		}{
			{
				name: "letter with only A",
				cfg:  LetterGradeConfig{Grades: &LetterBandOverrides{A: Float(95)}},
				want: LetterBands{A: 95, B: 80, C: 70},
				got:  func(c GradingConfig) any { return c.(LetterGradeConfig).Bands() },
			},
			{
				name: "letter with only C",
				cfg:  LetterGradeConfig{Grades: &LetterBandOverrides{C: Float(65)}},
				want: LetterBands{A: 90, B: 80, C: 65},
				got:  func(c GradingConfig) any { return c.(LetterGradeConfig).Bands() },
			},
			{
				name: "negative scale with only warning",
				cfg:  NegativeScaleConfig{Warning: Float(-5)},
				want: [2]float64{-5, -25},
				got: func(c GradingConfig) any {
					w, cr := c.(NegativeScaleConfig).Thresholds()
					return [2]float64{w, cr}
				},
			},
			{
				name: "negative scale with only critical",
				cfg:  NegativeScaleConfig{Critical: Float(-40)},
				want: [2]float64{-10, -40},
				got: func(c GradingConfig) any {
					w, cr := c.(NegativeScaleConfig).Thresholds()
					return [2]float64{w, cr}
				},
			},
			{
				name: "three tier with only good ceiling",
				cfg:  ThreeTierConfig{GoodMaxPoints: Float(4)},
				want: [2]float64{4, 13},
				got: func(c GradingConfig) any {
					g, s := c.(ThreeTierConfig).Ceilings()
					return [2]float64{g, s}
				},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.got(tt.cfg))
			})
		}
	})

	t.Run("strict letter", func(t *testing.T) {
		assert.Equal(t, "A", StrictLetterGradeConfig{}.RequiredLetter())
		assert.Equal(t, "B", StrictLetterGradeConfig{PassRequires: "B"}.RequiredLetter())
		assert.Equal(t, "A", StrictLetterGradeConfig{PassRequires: "Z"}.RequiredLetter())
	})

	t.Run("negative scale", func(t *testing.T) {
		warning, critical := NegativeScaleConfig{}.Thresholds()
		assert.Equal(t, -10.0, warning)
		assert.Equal(t, -25.0, critical)
	})

	t.Run("three tier", func(t *testing.T) {
		good, satisfactory := ThreeTierConfig{SatisfactoryMaxPoints: Float(20)}.Ceilings()
		assert.Equal(t, 6.0, good)
		assert.Equal(t, 20.0, satisfactory)
	})

	t.Run("color placard", func(t *testing.T) {
		green, yellow := ColorPlacardConfig{YellowMaxMajors: Int(5)}.MajorCaps()
		assert.Equal(t, 1, green)
		assert.Equal(t, 5, yellow)
	})
}

func TestEveryGradingTypeHasAConfigVariant(t *testing.T) {
	variants := []GradingConfig{
		LetterGradeConfig{}, StrictLetterGradeConfig{}, ColorPlacardConfig{}, Score100Config{},
		NegativeScaleConfig{}, PassReinspectConfig{}, ThreeTierConfig{}, ReportOnlyConfig{},
	}
	kinds := make(map[GradingType]bool, len(variants))
	for _, v := range variants {
		kinds[v.Kind()] = true
	}
	for _, kind := range AllGradingTypes {
		assert.True(t, kinds[kind], "no config variant for %s", kind)
	}
}

func TestLocationJurisdictionClone(t *testing.T) {
	lj := LocationJurisdiction{
		LocationID:        "loc-1",
		FederalFoodSafety: &AuthorityRecord{JurisdictionID: "nps_food", Federal: true},
	}
	clone := lj.Clone()
	clone.FederalFoodSafety.JurisdictionID = "changed"

	assert.Equal(t, "nps_food", lj.FederalFoodSafety.JurisdictionID)
	assert.Nil(t, clone.FederalFireSafety)
}

func TestLocationScoreAuthorities(t *testing.T) {
	ls := LocationScore{
		LocationID: "loc-1",
		FoodSafety: FoodSafetyScore{AuthorityScore{Pillar: FoodSafety, JurisdictionID: "food"}},
		FireSafety: FireSafetyScore{AuthorityScore{Pillar: FireSafety, JurisdictionID: "fire"}},
	}
	require.Len(t, ls.Authorities(), 2)

	ls.Overlays.FireSafety = &AuthorityScore{Pillar: FireSafety, JurisdictionID: "nps_fire", Federal: true}
	got := ls.Authorities()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"food", "fire", "nps_fire"},
		[]string{got[0].JurisdictionID, got[1].JurisdictionID, got[2].JurisdictionID})
}
