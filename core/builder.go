package core

import (
	"github.com/placardhq/placard/core/algo"
	"github.com/placardhq/placard/schema"
)

// notInspectedDisplay is shown for an authority that has no score yet.
const notInspectedDisplay = "Not yet inspected"

// AuthorityScoreBuilder builds the caller-facing score of one authority.
type AuthorityScoreBuilder struct {
	record  schema.AuthorityRecord
	profile schema.JurisdictionProfile
	score   *float64
	result  *schema.AuthorityScore
}

// NewAuthorityScoreBuilder is the starting point for building an authority score.
// The score keeps the record's identity even when the profile is a fallback.
func NewAuthorityScoreBuilder(rec schema.AuthorityRecord, profile schema.JurisdictionProfile) *AuthorityScoreBuilder {
	id, agency := rec.JurisdictionID, rec.AgencyName
	if id == "" {
		id = profile.ID
	}
	if agency == "" {
		agency = profile.AgencyName
	}
	return &AuthorityScoreBuilder{
		record:  rec,
		profile: profile,
		result: &schema.AuthorityScore{
			Pillar:         rec.Pillar,
			JurisdictionID: id,
			AgencyName:     agency,
			GradingType:    profile.GradingType(),
			GradeDisplay:   notInspectedDisplay,
			Status:         schema.UnknownStatus,
			Federal:        rec.Federal,
		},
	}
}

// WithScore sets the normalized score. A nil score leaves the authority ungraded.
func (b *AuthorityScoreBuilder) WithScore(score *float64) *AuthorityScoreBuilder {
	if score != nil {
		v := *score
		b.score = &v
	}
	return b
}

// Grade resolves the score against the profile's scheme and fills in the verdict.
func (b *AuthorityScoreBuilder) Grade() *AuthorityScoreBuilder {
	if b.score == nil {
		return b
	}
	res := algo.Resolve(*b.score, b.profile)
	grade := res.Grade

	b.result.Grade = &grade
	b.result.GradeDisplay = res.Display
	b.result.PassFail = res.PassFail
	b.result.Status = schema.StatusFor(res.PassFail)
	b.result.Details = res.Details
	b.result.NumericScore = numericScore(*b.score, b.result.GradingType, res)
	return b
}

// Build returns the finished authority score.
func (b *AuthorityScoreBuilder) Build() schema.AuthorityScore {
	return *b.result
}

// numericScore picks the number shown next to a grade. Negative-scale counties
// show their own scale; pass/reinspect style schemes expose no number at all.
func numericScore(score float64, kind schema.GradingType, res schema.SchemeResult) *float64 {
	if !algo.HasNumericScore(kind) {
		return nil
	}
	if kind == schema.ScoreNegative && res.Details != nil && res.Details.NegativeScore != nil {
		v := *res.Details.NegativeScore
		return &v
	}
	v := score
	return &v
}

// BuildAuthorityScore grades one authority's score against its resolved profile.
// A nil score yields an ungraded record with unknown status, never a nil record.
func BuildAuthorityScore(score *float64, rec schema.AuthorityRecord, profile schema.JurisdictionProfile) schema.AuthorityScore {
	return NewAuthorityScoreBuilder(rec, profile).WithScore(score).Grade().Build()
}
