package schema

// Documented defaults for grading config fields that a jurisdiction leaves unset.
const (
	DefaultGradeA             = 90.0
	DefaultGradeB             = 80.0
	DefaultGradeC             = 70.0
	DefaultFailBelow          = 70.0
	DefaultPassRequires       = "A"
	DefaultPassThreshold      = 70.0
	DefaultNegativeWarning    = -10.0
	DefaultNegativeCritical   = -25.0
	DefaultGoodMaxPoints      = 6.0
	DefaultSatisfactoryPoints = 13.0
	DefaultGreenMaxMajors     = 1
	DefaultYellowMaxMajors    = 3
)

// GradingConfig is the scheme-specific configuration of a jurisdiction.
// Each variant carries only the fields its algorithm reads, and the variant
// itself determines the grading type.
type GradingConfig interface {
	Kind() GradingType
	isGradingConfig()
}

// LetterBands holds the lower bound of each passing letter band.
type LetterBands struct {
	A float64 `json:"A" yaml:"A"`
	B float64 `json:"B" yaml:"B"`
	C float64 `json:"C" yaml:"C"`
}

// DefaultLetterBands returns the 90/80/70 bands.
func DefaultLetterBands() LetterBands {
	return LetterBands{A: DefaultGradeA, B: DefaultGradeB, C: DefaultGradeC}
}

// LetterBandOverrides is a catalog's partial set of letter boundaries.
// A nil letter keeps its default.
type LetterBandOverrides struct {
	A *float64 `json:"A,omitempty" yaml:"A"`
	B *float64 `json:"B,omitempty" yaml:"B"`
	C *float64 `json:"C,omitempty" yaml:"C"`
}

// LetterGradeConfig configures the letter_grade scheme.
type LetterGradeConfig struct {
	Grades    *LetterBandOverrides `json:"grades,omitempty"`
	FailBelow *float64             `json:"fail_below,omitempty"`
}

// StrictLetterGradeConfig configures the letter_grade_strict scheme.
// Bands are fixed at 90/80/70; only the required letter is configurable.
type StrictLetterGradeConfig struct {
	PassRequires string `json:"pass_requires,omitempty"`
}

// ColorPlacardConfig configures the color_placard scheme. The major-violation
// caps describe the live inspection model; the score-based path ignores them.
type ColorPlacardConfig struct {
	GreenMaxMajors  *int `json:"green_max_majors,omitempty"`
	YellowMaxMajors *int `json:"yellow_max_majors,omitempty"`
}

// Score100Config configures the score_100 scheme, which reads the profile's pass threshold.
type Score100Config struct{}

// NegativeScaleConfig configures the score_negative scheme. Both thresholds are negative.
type NegativeScaleConfig struct {
	Warning  *float64 `json:"warning,omitempty"`
	Critical *float64 `json:"critical,omitempty"`
}

// PassReinspectConfig configures the pass_reinspect scheme.
type PassReinspectConfig struct{}

// ThreeTierConfig configures the three_tier_rating scheme by point ceilings.
type ThreeTierConfig struct {
	GoodMaxPoints         *float64 `json:"good_max_points,omitempty"`
	SatisfactoryMaxPoints *float64 `json:"satisfactory_max_points,omitempty"`
}

// ReportOnlyConfig marks the deprecated report_only type.
type ReportOnlyConfig struct{}

// Kind implements GradingConfig.
func (LetterGradeConfig) Kind() GradingType { return LetterGrade }

// Kind implements GradingConfig.
func (StrictLetterGradeConfig) Kind() GradingType { return LetterGradeStrict }

// Kind implements GradingConfig.
func (ColorPlacardConfig) Kind() GradingType { return ColorPlacard }

// Kind implements GradingConfig.
func (Score100Config) Kind() GradingType { return Score100 }

// Kind implements GradingConfig.
func (NegativeScaleConfig) Kind() GradingType { return ScoreNegative }

// Kind implements GradingConfig.
func (PassReinspectConfig) Kind() GradingType { return PassReinspect }

// Kind implements GradingConfig.
func (ThreeTierConfig) Kind() GradingType { return ThreeTierRating }

// Kind implements GradingConfig.
func (ReportOnlyConfig) Kind() GradingType { return ReportOnly }

func (LetterGradeConfig) isGradingConfig()       {}
func (StrictLetterGradeConfig) isGradingConfig() {}
func (ColorPlacardConfig) isGradingConfig()      {}
func (Score100Config) isGradingConfig()          {}
func (NegativeScaleConfig) isGradingConfig()     {}
func (PassReinspectConfig) isGradingConfig()     {}
func (ThreeTierConfig) isGradingConfig()         {}
func (ReportOnlyConfig) isGradingConfig()        {}

// Bands returns the configured letter bands, each missing letter defaulted on its own.
func (c LetterGradeConfig) Bands() LetterBands {
	if c.Grades == nil {
		return DefaultLetterBands()
	}
	return LetterBands{
		A: floatOr(c.Grades.A, DefaultGradeA),
		B: floatOr(c.Grades.B, DefaultGradeB),
		C: floatOr(c.Grades.C, DefaultGradeC),
	}
}

// FailThreshold returns the configured fail_below or the default.
func (c LetterGradeConfig) FailThreshold() float64 {
	return floatOr(c.FailBelow, DefaultFailBelow)
}

// RequiredLetter returns the configured pass_requires letter or the default.
func (c StrictLetterGradeConfig) RequiredLetter() string {
	switch c.PassRequires {
	case "A", "B", "C":
		return c.PassRequires
	default:
		return DefaultPassRequires
	}
}

// MajorCaps returns the documented green and yellow major-violation caps.
func (c ColorPlacardConfig) MajorCaps() (green, yellow int) {
	green, yellow = DefaultGreenMaxMajors, DefaultYellowMaxMajors
	if c.GreenMaxMajors != nil {
		green = *c.GreenMaxMajors
	}
	if c.YellowMaxMajors != nil {
		yellow = *c.YellowMaxMajors
	}
	return green, yellow
}

// Thresholds returns the warning and critical cutoffs, defaulted.
func (c NegativeScaleConfig) Thresholds() (warning, critical float64) {
	return floatOr(c.Warning, DefaultNegativeWarning), floatOr(c.Critical, DefaultNegativeCritical)
}

// Ceilings returns the Good and Satisfactory point ceilings, defaulted.
func (c ThreeTierConfig) Ceilings() (good, satisfactory float64) {
	return floatOr(c.GoodMaxPoints, DefaultGoodMaxPoints), floatOr(c.SatisfactoryMaxPoints, DefaultSatisfactoryPoints)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Float returns a pointer to v. It keeps optional config literals short.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
