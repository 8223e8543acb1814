package algo

import (
	"math"
	"testing"

	"github.com/placardhq/placard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroConfig returns the unconfigured variant for a grading type.
// This is a test helper function.
func zeroConfig(kind schema.GradingType) schema.GradingConfig {
	switch kind {
	case schema.LetterGrade:
		return schema.LetterGradeConfig{}
	case schema.LetterGradeStrict:
		return schema.StrictLetterGradeConfig{}
	case schema.ColorPlacard:
		return schema.ColorPlacardConfig{}
	case schema.Score100:
		return schema.Score100Config{}
	case schema.ScoreNegative:
		return schema.NegativeScaleConfig{}
	case schema.PassReinspect:
		return schema.PassReinspectConfig{}
	case schema.ThreeTierRating:
		return schema.ThreeTierConfig{}
	default:
		return schema.ReportOnlyConfig{}
	}
}

func profileWith(cfg schema.GradingConfig) schema.JurisdictionProfile {
	return schema.JurisdictionProfile{ID: "test", Grading: cfg}
}

func TestResolveLetterGrade(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		cfg      schema.LetterGradeConfig
		grade    string
		passFail schema.PassFail
	}{
		{name: "score 90 is A", score: 90, grade: "A", passFail: schema.Pass},
		{name: "score 89 is B", score: 89, grade: "B", passFail: schema.Pass},
		{name: "score 80 is B", score: 80, grade: "B", passFail: schema.Pass},
		{name: "score 70 is C and passes", score: 70, grade: "C", passFail: schema.Pass},
		{name: "score 69.5 fails", score: 69.5, grade: "F", passFail: schema.Fail},
		{name: "above range extrapolates", score: 140, grade: "A", passFail: schema.Pass},
		{name: "below range extrapolates", score: -30, grade: "F", passFail: schema.Fail},
		{
			name:     "custom fail_below",
			score:    75,
			cfg:      schema.LetterGradeConfig{FailBelow: schema.Float(80)},
			grade:    "C",
			passFail: schema.Fail,
		},
		{
			name:     "custom bands",
			score:    92,
			cfg:      schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{A: schema.Float(93), B: schema.Float(85), C: schema.Float(75)}},
			grade:    "B",
			passFail: schema.Pass,
		},
		{
			name:     "only A set keeps default B band",
			score:    85,
			cfg:      schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{A: schema.Float(95)}},
			grade:    "B",
			passFail: schema.Pass,
		},
		{
			name:     "only A set keeps default fail line",
			score:    50,
			cfg:      schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{A: schema.Float(95)}},
			grade:    "F",
			passFail: schema.Fail,
		},
		{
			name:     "only C set keeps default A band",
			score:    91,
			cfg:      schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{C: schema.Float(60)}},
			grade:    "A",
			passFail: schema.Pass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.score, profileWith(tt.cfg))
			assert.Equal(t, tt.grade, res.Grade)
			assert.Equal(t, tt.passFail, res.PassFail)
			assert.Contains(t, res.Display, tt.grade)
		})
	}
}

// TestResolveStrictLetterGrade covers the same-score-different-outcome case.
func TestResolveStrictLetterGrade(t *testing.T) {
	requireA := profileWith(schema.StrictLetterGradeConfig{PassRequires: "A"})

	res := Resolve(88, requireA)
	assert.Equal(t, "B", res.Grade)
	assert.Equal(t, schema.Fail, res.PassFail)
	assert.Contains(t, res.Display, "FAIL")
	require.NotNil(t, res.Details)
	assert.Equal(t, "A", res.Details.RequiredGrade)

	// The same score passes in a plain letter-grade county.
	plain := Resolve(88, profileWith(schema.LetterGradeConfig{}))
	assert.Equal(t, "B", plain.Grade)
	assert.Equal(t, schema.Pass, plain.PassFail)

	assert.Equal(t, schema.Pass, Resolve(90, requireA).PassFail)
	assert.Equal(t, schema.Fail, Resolve(88, profileWith(schema.StrictLetterGradeConfig{})).PassFail, "default requires A")

	requireB := profileWith(schema.StrictLetterGradeConfig{PassRequires: "B"})
	assert.Equal(t, schema.Pass, Resolve(85, requireB).PassFail)
	assert.Equal(t, schema.Fail, Resolve(75, requireB).PassFail)

	bogus := profileWith(schema.StrictLetterGradeConfig{PassRequires: "Z"})
	assert.Equal(t, schema.Fail, Resolve(85, bogus).PassFail, "unknown letter falls back to A")
}

func TestResolveColorPlacard(t *testing.T) {
	tests := []struct {
		score    float64
		grade    string
		passFail schema.PassFail
	}{
		{90, "Green", schema.Pass},
		{89.9, "Yellow", schema.Warning},
		{80, "Yellow", schema.Warning},
		{75, "Yellow", schema.Warning},
		{74, "Red", schema.Fail},
		{50, "Red", schema.Fail},
	}
	for _, tt := range tests {
		t.Run(FormatScore(tt.score), func(t *testing.T) {
			res := Resolve(tt.score, profileWith(schema.ColorPlacardConfig{}))
			assert.Equal(t, tt.grade, res.Grade)
			assert.Equal(t, tt.passFail, res.PassFail)
		})
	}

	t.Run("major caps do not change the score-based path", func(t *testing.T) {
		capped := schema.ColorPlacardConfig{GreenMaxMajors: schema.Int(0), YellowMaxMajors: schema.Int(0)}
		assert.Equal(t, Resolve(80, profileWith(schema.ColorPlacardConfig{})), Resolve(80, profileWith(capped)))
	})
}

func TestResolveScore100(t *testing.T) {
	p := profileWith(schema.Score100Config{})
	res := Resolve(70, p)
	assert.Equal(t, "70", res.Grade)
	assert.Equal(t, schema.Pass, res.PassFail)
	assert.Equal(t, "70/100 PASS", res.Display)

	assert.Equal(t, schema.Fail, Resolve(69, p).PassFail)
	assert.Equal(t, "88.5", Resolve(88.5, p).Grade)

	p.PassThreshold = schema.Float(85)
	assert.Equal(t, schema.Fail, Resolve(84, p).PassFail)
	assert.Equal(t, schema.Pass, Resolve(85, p).PassFail)
}

func TestResolveNegativeScale(t *testing.T) {
	p := profileWith(schema.NegativeScaleConfig{})

	res := Resolve(88, p)
	assert.Equal(t, "-12", res.Grade)
	assert.Equal(t, schema.Warning, res.PassFail)
	require.NotNil(t, res.Details)
	require.NotNil(t, res.Details.NegativeScore)
	assert.InDelta(t, -12.0, *res.Details.NegativeScore, 1e-9)

	assert.Equal(t, schema.Pass, Resolve(95, p).PassFail)
	assert.Equal(t, schema.Warning, Resolve(90, p).PassFail, "-10 is at the warning threshold")
	assert.Equal(t, schema.Fail, Resolve(75, p).PassFail, "-25 is at the critical threshold")

	custom := profileWith(schema.NegativeScaleConfig{Warning: schema.Float(-5), Critical: schema.Float(-15)})
	assert.Equal(t, schema.Fail, Resolve(85, custom).PassFail)
	assert.Equal(t, schema.Warning, Resolve(92, custom).PassFail)
}

func TestResolvePassReinspect(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		grade       string
		passFail    schema.PassFail
		majors      int
		minors      int
		uncorrected int
	}{
		{"score 88 passes with majors corrected", 88, "Pass", schema.Pass, 3, 2, 0},
		{"perfect score", 100, "Pass", schema.Pass, 0, 0, 0},
		{"score 80 has no uncorrected majors", 80, "Pass", schema.Pass, 5, 3, 0},
		{"score 79 needs reinspection", 79, "Reinspection Required", schema.Fail, 5, 3, 1},
		{"score 64 has two uncorrected", 64, "Reinspection Required", schema.Fail, 9, 6, 2},
		{"score 60 is not closed", 60, "Reinspection Required", schema.Fail, 10, 6, 2},
		{"score 59 is closed", 59, "CLOSED", schema.Fail, 10, 6, 2},
		{"above range clamps counts to zero", 120, "Pass", schema.Pass, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.score, profileWith(schema.PassReinspectConfig{}))
			assert.Equal(t, tt.grade, res.Grade)
			assert.Equal(t, tt.passFail, res.PassFail)
			require.NotNil(t, res.Details)
			assert.Equal(t, tt.majors, *res.Details.Majors)
			assert.Equal(t, tt.minors, *res.Details.Minors)
			assert.Equal(t, tt.uncorrected, *res.Details.UncorrectedMajors)
		})
	}

	assert.Equal(t, "Pass (3 major violations corrected on-site)", Resolve(88, profileWith(schema.PassReinspectConfig{})).Display)
	assert.Equal(t, "Pass", Resolve(100, profileWith(schema.PassReinspectConfig{})).Display)
	assert.True(t, Resolve(40, profileWith(schema.PassReinspectConfig{})).Details.ImminentHealthRisk)
}

func TestResolveThreeTier(t *testing.T) {
	tests := []struct {
		score    float64
		grade    string
		passFail schema.PassFail
	}{
		{100, "Good", schema.Pass},
		{94, "Good", schema.Pass},
		{93, "Satisfactory", schema.Pass},
		{87, "Satisfactory", schema.Pass},
		{86, "Unsatisfactory", schema.Fail},
		{20, "Unsatisfactory", schema.Fail},
	}
	for _, tt := range tests {
		t.Run(FormatScore(tt.score), func(t *testing.T) {
			res := Resolve(tt.score, profileWith(schema.ThreeTierConfig{}))
			assert.Equal(t, tt.grade, res.Grade)
			assert.Equal(t, tt.passFail, res.PassFail)
			require.NotNil(t, res.Details.Points)
			assert.InDelta(t, 100-tt.score, *res.Details.Points, 1e-9)
		})
	}

	custom := profileWith(schema.ThreeTierConfig{GoodMaxPoints: schema.Float(2), SatisfactoryMaxPoints: schema.Float(4)})
	assert.Equal(t, "Unsatisfactory", Resolve(95, custom).Grade)
}

// TestResolvePartialThresholds checks that a config setting only some of its
// thresholds keeps the defaults for the rest.
func TestResolvePartialThresholds(t *testing.T) {
	tests := []struct {
		name     string
		cfg      schema.GradingConfig
		score    float64
		grade    string
		passFail schema.PassFail
	}{
		{"negative warning only, above warning", schema.NegativeScaleConfig{Warning: schema.Float(-5)}, 97, "-3", schema.Pass},
		{"negative warning only, between", schema.NegativeScaleConfig{Warning: schema.Float(-5)}, 88, "-12", schema.Warning},
		{"negative warning only, default critical", schema.NegativeScaleConfig{Warning: schema.Float(-5)}, 75, "-25", schema.Fail},
		{"negative critical only, default warning", schema.NegativeScaleConfig{Critical: schema.Float(-40)}, 92, "-8", schema.Pass},
		{"negative critical only, past old critical", schema.NegativeScaleConfig{Critical: schema.Float(-40)}, 70, "-30", schema.Warning},
		{"three tier good only, default satisfactory", schema.ThreeTierConfig{GoodMaxPoints: schema.Float(4)}, 95, "Satisfactory", schema.Pass},
		{"three tier good only, satisfactory edge", schema.ThreeTierConfig{GoodMaxPoints: schema.Float(4)}, 87, "Satisfactory", schema.Pass},
		{"three tier good only, below", schema.ThreeTierConfig{GoodMaxPoints: schema.Float(4)}, 86, "Unsatisfactory", schema.Fail},
		{"three tier satisfactory only, default good", schema.ThreeTierConfig{SatisfactoryMaxPoints: schema.Float(20)}, 94, "Good", schema.Pass},
		{"three tier satisfactory only, widened", schema.ThreeTierConfig{SatisfactoryMaxPoints: schema.Float(20)}, 80, "Satisfactory", schema.Pass},
		{"letter B only, default A", schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{B: schema.Float(85)}}, 90, "A", schema.Pass},
		{"letter B only, raised B", schema.LetterGradeConfig{Grades: &schema.LetterBandOverrides{B: schema.Float(85)}}, 84, "C", schema.Pass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.score, profileWith(tt.cfg))
			assert.Equal(t, tt.grade, res.Grade)
			assert.Equal(t, tt.passFail, res.PassFail)
		})
	}
}

// TestResolveLegacyFallsThroughToPassReinspect checks the report_only compatibility path.
func TestResolveLegacyFallsThroughToPassReinspect(t *testing.T) {
	expected := Resolve(72, profileWith(schema.PassReinspectConfig{}))
	assert.Equal(t, expected, Resolve(72, profileWith(schema.ReportOnlyConfig{})))
	assert.Equal(t, expected, Resolve(72, schema.JurisdictionProfile{ID: "no-config"}))
}

// TestEveryGradingTypeHasAlgorithm guards against a new grading type silently
// falling through to the legacy path.
func TestEveryGradingTypeHasAlgorithm(t *testing.T) {
	legacy := Resolve(55, profileWith(schema.PassReinspectConfig{}))
	for _, kind := range schema.AllGradingTypes {
		t.Run(string(kind), func(t *testing.T) {
			cfg := zeroConfig(kind)
			require.Equal(t, kind, cfg.Kind())
			if kind == schema.PassReinspect || kind == schema.ReportOnly {
				return
			}
			assert.NotEqual(t, legacy.Grade, Resolve(55, profileWith(cfg)).Grade)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	scores := []float64{-50, 0, 59.5, 70, 88, 89.999, 90, 100, 250}
	for _, kind := range schema.AllGradingTypes {
		p := profileWith(zeroConfig(kind))
		for _, s := range scores {
			assert.Equal(t, Resolve(s, p), Resolve(s, p), "kind=%s score=%v", kind, s)
		}
	}
}

func TestResolveNonFiniteDoesNotPanic(t *testing.T) {
	for _, kind := range schema.AllGradingTypes {
		p := profileWith(zeroConfig(kind))
		for _, s := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), math.MaxFloat64, -math.MaxFloat64} {
			assert.NotPanics(t, func() { Resolve(s, p) }, "kind=%s score=%v", kind, s)
		}
	}
}

func TestHasNumericScore(t *testing.T) {
	assert.False(t, HasNumericScore(schema.PassReinspect))
	assert.False(t, HasNumericScore(schema.ReportOnly))
	assert.True(t, HasNumericScore(schema.LetterGrade))
	assert.True(t, HasNumericScore(schema.ScoreNegative))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "A>=90 B>=80 C>=70 else F; pass at 70+", Describe(profileWith(schema.LetterGradeConfig{})))
	assert.Contains(t, Describe(profileWith(schema.StrictLetterGradeConfig{PassRequires: "B"})), "requires B")
	assert.Contains(t, Describe(profileWith(schema.NegativeScaleConfig{})), "warning<=-10 fail<=-25")
	assert.Contains(t, Describe(profileWith(schema.ReportOnlyConfig{})), "pass/reinspect")
	for _, kind := range schema.AllGradingTypes {
		assert.NotEmpty(t, Describe(profileWith(zeroConfig(kind))))
	}
}

func BenchmarkResolve(b *testing.B) {
	p := profileWith(schema.StrictLetterGradeConfig{PassRequires: "A"})
	for b.Loop() {
		Resolve(88, p)
	}
}

func BenchmarkResolvePassReinspect(b *testing.B) {
	p := profileWith(schema.PassReinspectConfig{})
	for b.Loop() {
		Resolve(71, p)
	}
}
