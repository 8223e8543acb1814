package core

import (
	"fmt"

	"github.com/placardhq/placard/core/algo"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

// WarnFunc reports a recoverable condition. contract.LogWarn satisfies it.
type WarnFunc func(msg string, err error)

// Engine grades scores and locations against an injected catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog   *Catalog
	directory *Directory
	scores    contract.ScoreSource
	warn      WarnFunc
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithWarnFunc routes fallback warnings to fn. A nil fn silences them.
func WithWarnFunc(fn WarnFunc) EngineOption {
	return func(e *Engine) {
		if fn == nil {
			fn = func(string, error) {}
		}
		e.warn = fn
	}
}

// NewEngine creates an engine. The catalog is required; the directory and score
// source may be nil when only raw scores are graded.
func NewEngine(catalog *Catalog, directory *Directory, scores contract.ScoreSource, opts ...EngineOption) (*Engine, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if directory == nil {
		directory = &Directory{entries: map[string]schema.LocationJurisdiction{}}
	}
	if scores == nil {
		scores = ScoreBook{}
	}
	e := &Engine{catalog: catalog, directory: directory, scores: scores, warn: contract.LogWarn}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// LocationIDs returns every location with an assigned jurisdiction.
func (e *Engine) LocationIDs() []string {
	return e.directory.LocationIDs()
}

// resolve looks up a profile and warns when the catalog default is used instead.
func (e *Engine) resolve(id string) (schema.JurisdictionProfile, bool) {
	profile, fellBack := e.catalog.ResolveOrDefault(id)
	if fellBack {
		e.warn("jurisdiction fallback", fmt.Errorf("%w %q, grading with %q", ErrUnknownJurisdiction, id, profile.ID))
	}
	return profile, fellBack
}

// GradeScore grades one normalized score against the requested jurisdiction.
func (e *Engine) GradeScore(score float64, jurisdictionID string) schema.GradeOutcome {
	profile, fellBack := e.resolve(jurisdictionID)
	return schema.GradeOutcome{
		RequestedID:    jurisdictionID,
		JurisdictionID: profile.ID,
		FellBack:       fellBack,
		Score:          score,
		Result:         algo.Resolve(score, profile),
	}
}

// Compare grades one score against every catalog entry, optionally limited to
// one pillar. Rows come back in catalog order.
func (e *Engine) Compare(score float64, pillar schema.Pillar) []schema.ComparisonRow {
	var rows []schema.ComparisonRow
	for _, p := range e.catalog.Profiles() {
		if pillar != "" && p.Pillar != pillar {
			continue
		}
		rows = append(rows, schema.ComparisonRow{
			Rank:           len(rows) + 1,
			JurisdictionID: p.ID,
			County:         p.County,
			AgencyName:     p.AgencyName,
			Pillar:         p.Pillar,
			GradingType:    p.GradingType(),
			Score:          score,
			Result:         algo.Resolve(score, p),
		})
	}
	return rows
}

// Jurisdiction returns the authorities assigned to a location, or nil when
// none is assigned yet.
func (e *Engine) Jurisdiction(locationID string) *schema.LocationJurisdiction {
	return e.directory.Lookup(locationID)
}

// ScoreLocation grades every authority of a location independently. It returns
// nil when the location has no jurisdiction assigned yet.
func (e *Engine) ScoreLocation(locationID string) *schema.LocationScore {
	lj := e.directory.Lookup(locationID)
	if lj == nil {
		return nil
	}
	scores := e.scores.Scores(locationID)

	food := schema.FoodSafetyScore{AuthorityScore: e.authorityScore(scores.FoodSafety, lj.FoodSafety)}
	fire := schema.FireSafetyScore{AuthorityScore: e.authorityScore(scores.FireSafety, lj.FireSafety)}

	var overlays schema.OverlayScores
	if lj.FederalFoodSafety != nil {
		s := e.authorityScore(scores.FederalFoodSafety, *lj.FederalFoodSafety)
		overlays.FoodSafety = &s
	}
	if lj.FederalFireSafety != nil {
		s := e.authorityScore(scores.FederalFireSafety, *lj.FederalFireSafety)
		overlays.FireSafety = &s
	}

	ls := Compose(locationID, food, fire, overlays)
	return &ls
}

func (e *Engine) authorityScore(score *float64, rec schema.AuthorityRecord) schema.AuthorityScore {
	profile, _ := e.resolve(rec.JurisdictionID)
	return BuildAuthorityScore(score, rec, profile)
}

// Summaries describes every catalog entry with its effective grading rule.
func (e *Engine) Summaries() []schema.JurisdictionSummary {
	profiles := e.catalog.Profiles()
	out := make([]schema.JurisdictionSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, schema.JurisdictionSummary{
			ID:          p.ID,
			County:      p.County,
			AgencyName:  p.AgencyName,
			Contact:     p.AgencyContact,
			Pillar:      p.Pillar,
			ScoringType: p.ScoringType,
			GradingType: p.GradingType(),
			Rule:        algo.Describe(p),
		})
	}
	return out
}
