package core

import "github.com/placardhq/placard/schema"

// Compose bundles the independent pillar scores of a location. It never derives
// a combined value from them; each pillar keeps its own authority's verdict.
func Compose(locationID string, food schema.FoodSafetyScore, fire schema.FireSafetyScore, overlays schema.OverlayScores) schema.LocationScore {
	return schema.LocationScore{
		LocationID: locationID,
		FoodSafety: food,
		FireSafety: fire,
		Overlays:   cloneOverlays(overlays),
	}
}

func cloneOverlays(o schema.OverlayScores) schema.OverlayScores {
	var out schema.OverlayScores
	if o.FoodSafety != nil {
		s := *o.FoodSafety
		out.FoodSafety = &s
	}
	if o.FireSafety != nil {
		s := *o.FireSafety
		out.FireSafety = &s
	}
	return out
}
