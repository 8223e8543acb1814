// Package algo holds the pure grading algorithms. Nothing here performs I/O,
// reads the clock or keeps state between calls.
package algo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/placardhq/placard/schema"
)

// Fixed boundaries used by the pass/reinspect and color placard schemes.
const (
	closureBelow        = 60.0
	reinspectBelow      = 80.0
	majorDeductionSize  = 4.0
	minorDeductionSize  = 6.0
	uncorrectedStepSize = 8.0
	placardGreenAt      = 90.0
	placardYellowAt     = 75.0
)

// Resolve grades a normalized score against a jurisdiction profile.
// The score is not range-checked; every scheme extrapolates out-of-domain input.
// Legacy report_only profiles, and profiles without a grading config, are graded
// with the pass/reinspect scheme.
func Resolve(score float64, profile schema.JurisdictionProfile) schema.SchemeResult {
	switch cfg := profile.Grading.(type) {
	case schema.LetterGradeConfig:
		return letterGrade(score, cfg)
	case schema.StrictLetterGradeConfig:
		return strictLetterGrade(score, cfg)
	case schema.ColorPlacardConfig:
		return colorPlacard(score)
	case schema.Score100Config:
		return score100(score, passThreshold(profile))
	case schema.NegativeScaleConfig:
		return negativeScale(score, cfg)
	case schema.ThreeTierConfig:
		return threeTier(score, cfg)
	default: // PassReinspectConfig, ReportOnlyConfig, nil
		return passReinspect(score)
	}
}

// HasNumericScore reports whether a grading type exposes a numeric score to callers.
func HasNumericScore(kind schema.GradingType) bool {
	switch kind {
	case schema.PassReinspect, schema.ReportOnly:
		return false
	default:
		return true
	}
}

// passThreshold returns the profile's pass threshold or the documented default.
func passThreshold(p schema.JurisdictionProfile) float64 {
	if p.PassThreshold == nil {
		return schema.DefaultPassThreshold
	}
	return *p.PassThreshold
}

// letterFor maps a score to its letter band. Ties go to the higher band.
func letterFor(score float64, b schema.LetterBands) string {
	switch {
	case score >= b.A:
		return "A"
	case score >= b.B:
		return "B"
	case score >= b.C:
		return "C"
	default:
		return "F"
	}
}

// letterRank orders letters so that a higher rank is a better grade.
func letterRank(letter string) int {
	switch letter {
	case "A":
		return 3
	case "B":
		return 2
	case "C":
		return 1
	default:
		return 0
	}
}

func letterGrade(score float64, cfg schema.LetterGradeConfig) schema.SchemeResult {
	grade := letterFor(score, cfg.Bands())
	pf := schema.Fail
	if score >= cfg.FailThreshold() {
		pf = schema.Pass
	}
	return schema.SchemeResult{
		Grade:    grade,
		PassFail: pf,
		Display:  fmt.Sprintf("Grade %s (%s) %s", grade, FormatScore(score), verdictWord(pf)),
	}
}

// strictLetterGrade uses the fixed 90/80/70 bands. A letter below the required
// one fails even though it would pass in a plain letter-grade county.
func strictLetterGrade(score float64, cfg schema.StrictLetterGradeConfig) schema.SchemeResult {
	required := cfg.RequiredLetter()
	grade := letterFor(score, schema.DefaultLetterBands())
	pf := schema.Fail
	if letterRank(grade) >= letterRank(required) {
		pf = schema.Pass
	}
	display := fmt.Sprintf("Grade %s (%s) %s", grade, FormatScore(score), verdictWord(pf))
	if pf == schema.Fail {
		display += fmt.Sprintf(" - grade %s required", required)
	}
	return schema.SchemeResult{
		Grade:    grade,
		PassFail: pf,
		Display:  display,
		Details:  &schema.SchemeDetails{RequiredGrade: required},
	}
}

// colorPlacard maps the score straight to a placard color. The live service
// decides from actual major-violation counts; this path stays score-based.
func colorPlacard(score float64) schema.SchemeResult {
	switch {
	case score >= placardGreenAt:
		return schema.SchemeResult{Grade: "Green", PassFail: schema.Pass, Display: "Green Placard - PASS"}
	case score >= placardYellowAt:
		return schema.SchemeResult{Grade: "Yellow", PassFail: schema.Warning, Display: "Yellow Placard - CONDITIONAL PASS"}
	default:
		return schema.SchemeResult{Grade: "Red", PassFail: schema.Fail, Display: "Red Placard - FAIL"}
	}
}

func score100(score, threshold float64) schema.SchemeResult {
	pf := schema.Fail
	if score >= threshold {
		pf = schema.Pass
	}
	grade := FormatScore(score)
	return schema.SchemeResult{
		Grade:    grade,
		PassFail: pf,
		Display:  fmt.Sprintf("%s/100 %s", grade, verdictWord(pf)),
	}
}

// negativeScale converts the normalized score back to the county's negative scale,
// where 0 is a perfect inspection and more negative is worse.
func negativeScale(score float64, cfg schema.NegativeScaleConfig) schema.SchemeResult {
	value := score - 100
	warning, critical := cfg.Thresholds()

	pf := schema.Pass
	switch {
	case value <= critical:
		pf = schema.Fail
	case value <= warning:
		pf = schema.Warning
	}

	grade := FormatScore(value)
	return schema.SchemeResult{
		Grade:    grade,
		PassFail: pf,
		Display:  fmt.Sprintf("%s points (%s)", grade, verdictWord(pf)),
		Details:  &schema.SchemeDetails{NegativeScore: &value},
	}
}

// passReinspect estimates violation counts from the score. The formulas approximate
// the live majors/minors inspection model and must stay exactly as they are.
func passReinspect(score float64) schema.SchemeResult {
	deficit := 100 - score
	majors := max(0, floorInt(deficit/majorDeductionSize))
	minors := max(0, floorInt(deficit/minorDeductionSize))
	uncorrected := 0
	if !(score >= reinspectBelow) {
		uncorrected = max(1, floorInt((reinspectBelow-score)/uncorrectedStepSize))
	}

	details := &schema.SchemeDetails{
		Majors:            &majors,
		Minors:            &minors,
		UncorrectedMajors: &uncorrected,
	}

	switch {
	case score < closureBelow:
		details.ImminentHealthRisk = true
		return schema.SchemeResult{
			Grade:    "CLOSED",
			PassFail: schema.Fail,
			Display:  "CLOSED - imminent health hazard",
			Details:  details,
		}
	case uncorrected > 0:
		return schema.SchemeResult{
			Grade:    "Reinspection Required",
			PassFail: schema.Fail,
			Display:  fmt.Sprintf("Reinspection Required (%s uncorrected)", plural(uncorrected, "major violation")),
			Details:  details,
		}
	default:
		display := "Pass"
		if majors > 0 {
			display = fmt.Sprintf("Pass (%s corrected on-site)", plural(majors, "major violation"))
		}
		return schema.SchemeResult{Grade: "Pass", PassFail: schema.Pass, Display: display, Details: details}
	}
}

// threeTier converts the score to accumulated points and buckets them.
func threeTier(score float64, cfg schema.ThreeTierConfig) schema.SchemeResult {
	points := 100 - score
	good, satisfactory := cfg.Ceilings()

	grade, pf := "Unsatisfactory", schema.Fail
	switch {
	case points <= good:
		grade, pf = "Good", schema.Pass
	case points <= satisfactory:
		grade, pf = "Satisfactory", schema.Pass
	}

	return schema.SchemeResult{
		Grade:    grade,
		PassFail: pf,
		Display:  fmt.Sprintf("%s (%s points)", grade, FormatScore(points)),
		Details:  &schema.SchemeDetails{Points: &points},
	}
}

// FormatScore renders a score without trailing zeros, e.g. 88 or 88.5.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func verdictWord(pf schema.PassFail) string {
	switch pf {
	case schema.Pass:
		return "PASS"
	case schema.Warning:
		return "WARNING"
	default:
		return "FAIL"
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// floorInt floors v into the int range. NaN floors to 0.
func floorInt(v float64) int {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}
