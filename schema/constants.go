package schema

// Custom string types for type safety.
type (
	// GradingType represents how a jurisdiction displays a finished score.
	GradingType string

	// ScoringType represents how raw violations accumulate into a score upstream.
	ScoringType string

	// Pillar represents one of the two compliance domains tracked per location.
	Pillar string

	// Status represents the caller-facing health of an authority score.
	Status string

	// PassFail represents the verdict of a grading scheme.
	PassFail string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for grading history.
	DatabaseBackend string
)

// All grading types supported.
const (
	LetterGrade       GradingType = "letter_grade"
	LetterGradeStrict GradingType = "letter_grade_strict"
	ColorPlacard      GradingType = "color_placard"
	Score100          GradingType = "score_100"
	ScoreNegative     GradingType = "score_negative"
	PassReinspect     GradingType = "pass_reinspect"
	ThreeTierRating   GradingType = "three_tier_rating"
	ReportOnly        GradingType = "report_only" // deprecated, graded as pass_reinspect
)

// All scoring types supported.
const (
	WeightedDeduction      ScoringType = "weighted_deduction"
	HeavyWeightedDeduction ScoringType = "heavy_weighted_deduction"
	MajorViolationCount    ScoringType = "major_violation_count"
	NegativeScale          ScoringType = "negative_scale"
	MajorMinorReinspect    ScoringType = "major_minor_reinspect"
	PointAccumulation      ScoringType = "point_accumulation"
	ReportOnlyScoring      ScoringType = "report_only"
)

// All pillars supported.
const (
	FoodSafety Pillar = "food_safety"
	FireSafety Pillar = "fire_safety"
)

// All status supported.
const (
	PassingStatus Status = "passing"
	FailingStatus Status = "failing"
	AtRiskStatus  Status = "at_risk"
	UnknownStatus Status = "unknown"
)

// All verdicts supported.
const (
	Pass    PassFail = "pass"
	Fail    PassFail = "fail"
	Warning PassFail = "warning"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllGradingTypes lists every grading type a catalog may declare, in display order.
var AllGradingTypes = []GradingType{
	LetterGrade,
	LetterGradeStrict,
	ColorPlacard,
	Score100,
	ScoreNegative,
	PassReinspect,
	ThreeTierRating,
	ReportOnly,
}

// AllPillars lists both pillars in display order.
var AllPillars = []Pillar{FoodSafety, FireSafety}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidScoringTypes lists all valid scoring types.
var ValidScoringTypes = map[ScoringType]struct{}{
	WeightedDeduction:      {},
	HeavyWeightedDeduction: {},
	MajorViolationCount:    {},
	NegativeScale:          {},
	MajorMinorReinspect:    {},
	PointAccumulation:      {},
	ReportOnlyScoring:      {},
}

// StatusFor maps a scheme verdict to the caller-facing status.
func StatusFor(pf PassFail) Status {
	switch pf {
	case Pass:
		return PassingStatus
	case Warning:
		return AtRiskStatus
	case Fail:
		return FailingStatus
	default:
		return UnknownStatus
	}
}
