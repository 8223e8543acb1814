package algo

import (
	"fmt"

	"github.com/placardhq/placard/schema"
)

// Describe explains a profile's grading rule with every default filled in.
func Describe(profile schema.JurisdictionProfile) string {
	switch cfg := profile.Grading.(type) {
	case schema.LetterGradeConfig:
		b := cfg.Bands()
		return fmt.Sprintf("A>=%s B>=%s C>=%s else F; pass at %s+",
			FormatScore(b.A), FormatScore(b.B), FormatScore(b.C), FormatScore(cfg.FailThreshold()))
	case schema.StrictLetterGradeConfig:
		return fmt.Sprintf("A>=90 B>=80 C>=70 else F; pass requires %s", cfg.RequiredLetter())
	case schema.ColorPlacardConfig:
		return fmt.Sprintf("Green>=%s Yellow>=%s else Red",
			FormatScore(placardGreenAt), FormatScore(placardYellowAt))
	case schema.Score100Config:
		return fmt.Sprintf("raw score; pass at %s+", FormatScore(passThreshold(profile)))
	case schema.NegativeScaleConfig:
		warning, critical := cfg.Thresholds()
		return fmt.Sprintf("score-100; warning<=%s fail<=%s", FormatScore(warning), FormatScore(critical))
	case schema.ThreeTierConfig:
		good, satisfactory := cfg.Ceilings()
		return fmt.Sprintf("points=100-score; Good<=%s Satisfactory<=%s else Unsatisfactory",
			FormatScore(good), FormatScore(satisfactory))
	case schema.ReportOnlyConfig:
		return "report only (graded as pass/reinspect)"
	default:
		return fmt.Sprintf("CLOSED<%s; reinspect<%s; else Pass",
			FormatScore(closureBelow), FormatScore(reinspectBelow))
	}
}
