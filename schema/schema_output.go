package schema

// ComparisonRow is one jurisdiction's verdict for a shared raw score.
type ComparisonRow struct {
	Rank           int          `json:"rank"`
	JurisdictionID string       `json:"jurisdiction_id"`
	County         string       `json:"county"`
	AgencyName     string       `json:"agency_name"`
	Pillar         Pillar       `json:"pillar"`
	GradingType    GradingType  `json:"grading_type"`
	Score          float64      `json:"score"`
	Result         SchemeResult `json:"result"`
}

// GradeOutcome is the result of grading one score against one requested jurisdiction.
type GradeOutcome struct {
	RequestedID    string       `json:"requested_jurisdiction_id"`
	JurisdictionID string       `json:"jurisdiction_id"`
	FellBack       bool         `json:"fell_back"`
	Score          float64      `json:"score"`
	Result         SchemeResult `json:"result"`
}

// JurisdictionSummary describes a catalog entry with its effective thresholds.
type JurisdictionSummary struct {
	ID          string      `json:"id"`
	County      string      `json:"county"`
	AgencyName  string      `json:"agency_name"`
	Contact     string      `json:"agency_contact,omitempty"`
	Pillar      Pillar      `json:"pillar"`
	ScoringType ScoringType `json:"scoring_type"`
	GradingType GradingType `json:"grading_type"`
	Rule        string      `json:"rule"`
}
