// Package schema has the jurisdiction profiles, authority records and score bundles
// shared by every part of placard.
package schema

// JurisdictionProfile is one regulatory authority's scoring and grading configuration.
type JurisdictionProfile struct {
	ID                string        // Stable catalog identifier, e.g. "riverside"
	County            string        // County or region name
	AgencyName        string        // Regulating agency
	AgencyContact     string        // Phone, email or URL of the agency
	Pillar            Pillar        // Pillar this authority regulates
	ScoringType       ScoringType   // How violations accumulate upstream
	Grading           GradingConfig // Display scheme and its parameters
	PassThreshold     *float64      // Simple pass cutoff, nil when unused
	WarningThreshold  *float64      // Simple warning cutoff, nil when unused
	CriticalThreshold *float64      // Simple critical cutoff, nil when unused
}

// GradingType reports the grading type declared by the profile's config variant.
// A profile without config is treated as the legacy report_only type.
func (p JurisdictionProfile) GradingType() GradingType {
	if p.Grading == nil {
		return ReportOnly
	}
	return p.Grading.Kind()
}

// AuthorityRecord identifies one authority attached to a location.
type AuthorityRecord struct {
	Pillar         Pillar `json:"pillar"`
	JurisdictionID string `json:"jurisdiction_id"`
	AgencyName     string `json:"agency_name"`
	CodeBasis      string `json:"code_basis"`
	Verified       bool   `json:"verified"`
	Federal        bool   `json:"federal,omitempty"`
}

// LocationJurisdiction is the per-location set of authorities: exactly one per pillar,
// plus optional federal overlays for co-regulated sites.
type LocationJurisdiction struct {
	LocationID        string           `json:"location_id"`
	LocationName      string           `json:"location_name,omitempty"`
	FoodSafety        AuthorityRecord  `json:"food_safety"`
	FireSafety        AuthorityRecord  `json:"fire_safety"`
	FederalFoodSafety *AuthorityRecord `json:"federal_food_safety,omitempty"`
	FederalFireSafety *AuthorityRecord `json:"federal_fire_safety,omitempty"`
}

// Clone returns a deep copy so callers never share overlay pointers.
func (lj LocationJurisdiction) Clone() LocationJurisdiction {
	clone := lj
	if lj.FederalFoodSafety != nil {
		rec := *lj.FederalFoodSafety
		clone.FederalFoodSafety = &rec
	}
	if lj.FederalFireSafety != nil {
		rec := *lj.FederalFireSafety
		clone.FederalFireSafety = &rec
	}
	return clone
}

// SchemeDetails is the scheme-specific breakdown behind a grade.
type SchemeDetails struct {
	Majors             *int     `json:"majors,omitempty"`
	Minors             *int     `json:"minors,omitempty"`
	UncorrectedMajors  *int     `json:"uncorrectedMajors,omitempty"`
	Points             *float64 `json:"points,omitempty"`
	NegativeScore      *float64 `json:"negativeScore,omitempty"`
	RequiredGrade      string   `json:"requiredGrade,omitempty"`
	ImminentHealthRisk bool     `json:"imminentHealthRisk,omitempty"`
}

// SchemeResult is the output of one grading scheme. Its JSON shape matches the
// live scoring service field for field.
type SchemeResult struct {
	Grade    string         `json:"grade"`
	PassFail PassFail       `json:"passFail"`
	Display  string         `json:"display"`
	Details  *SchemeDetails `json:"details,omitempty"`
}

// AuthorityScore is the engine's caller-facing output for one authority.
type AuthorityScore struct {
	Pillar         Pillar         `json:"pillar"`
	JurisdictionID string         `json:"jurisdiction_id"`
	AgencyName     string         `json:"agency_name"`
	GradingType    GradingType    `json:"grading_type"`
	Grade          *string        `json:"grade"`
	GradeDisplay   string         `json:"grade_display"`
	NumericScore   *float64       `json:"numeric_score"`
	Status         Status         `json:"status"`
	PassFail       PassFail       `json:"pass_fail,omitempty"`
	Details        *SchemeDetails `json:"details,omitempty"`
	Federal        bool           `json:"federal,omitempty"`
}

// FoodSafetyScore is the authority score of the food safety pillar.
// It is a distinct type so it cannot be passed where a fire score is expected.
type FoodSafetyScore struct{ AuthorityScore }

// FireSafetyScore is the authority score of the fire safety pillar.
type FireSafetyScore struct{ AuthorityScore }

// OverlayScores holds the optional federal overlay scores.
type OverlayScores struct {
	FoodSafety *AuthorityScore `json:"food_safety,omitempty"`
	FireSafety *AuthorityScore `json:"fire_safety,omitempty"`
}

// LocationScore bundles a location's independent authority scores.
// No field or method may combine the pillars into one value.
type LocationScore struct {
	LocationID string          `json:"location_id"`
	FoodSafety FoodSafetyScore `json:"food_safety"`
	FireSafety FireSafetyScore `json:"fire_safety"`
	Overlays   OverlayScores   `json:"overlays"`
}

// Authorities returns every authority score in the bundle in display order:
// food, fire, then any federal overlays.
func (ls LocationScore) Authorities() []AuthorityScore {
	out := []AuthorityScore{ls.FoodSafety.AuthorityScore, ls.FireSafety.AuthorityScore}
	if ls.Overlays.FoodSafety != nil {
		out = append(out, *ls.Overlays.FoodSafety)
	}
	if ls.Overlays.FireSafety != nil {
		out = append(out, *ls.Overlays.FireSafety)
	}
	return out
}

// PillarScores holds the normalized 0-100 scores known for a location.
// A nil entry means the authority has not inspected the location yet.
type PillarScores struct {
	FoodSafety        *float64 `json:"food_safety,omitempty"`
	FireSafety        *float64 `json:"fire_safety,omitempty"`
	FederalFoodSafety *float64 `json:"federal_food_safety,omitempty"`
	FederalFireSafety *float64 `json:"federal_fire_safety,omitempty"`
}
