// Package catalog loads jurisdiction profiles and location fixtures from YAML.
// Embedded demo data is used when no file is given.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
	"gopkg.in/yaml.v3"
)

//go:embed data/jurisdictions.yaml
var defaultJurisdictions []byte

//go:embed data/locations.yaml
var defaultLocations []byte

// gradingConfigFile is the union of every scheme's options as written in YAML.
// Only the fields of the declared grading type are read.
type gradingConfigFile struct {
	Grades                *schema.LetterBandOverrides `yaml:"grades"`
	FailBelow             *float64                    `yaml:"fail_below"`
	PassRequires          string                      `yaml:"pass_requires"`
	GreenMaxMajors        *int                        `yaml:"green_max_majors"`
	YellowMaxMajors       *int                        `yaml:"yellow_max_majors"`
	Warning               *float64                    `yaml:"warning"`
	Critical              *float64                    `yaml:"critical"`
	GoodMaxPoints         *float64                    `yaml:"good_max_points"`
	SatisfactoryMaxPoints *float64                    `yaml:"satisfactory_max_points"`
}

type profileFile struct {
	ID                string            `yaml:"id"`
	County            string            `yaml:"county"`
	AgencyName        string            `yaml:"agency_name"`
	AgencyContact     string            `yaml:"agency_contact"`
	Pillar            string            `yaml:"pillar"`
	ScoringType       string            `yaml:"scoring_type"`
	GradingType       string            `yaml:"grading_type"`
	GradingConfig     gradingConfigFile `yaml:"grading_config"`
	PassThreshold     *float64          `yaml:"pass_threshold"`
	WarningThreshold  *float64          `yaml:"warning_threshold"`
	CriticalThreshold *float64          `yaml:"critical_threshold"`
}

type catalogFile struct {
	Jurisdictions []profileFile `yaml:"jurisdictions"`
}

type recordFile struct {
	JurisdictionID string `yaml:"jurisdiction_id"`
	AgencyName     string `yaml:"agency_name"`
	CodeBasis      string `yaml:"code_basis"`
	Verified       bool   `yaml:"verified"`
}

type scoresFile struct {
	FoodSafety        *float64 `yaml:"food_safety"`
	FireSafety        *float64 `yaml:"fire_safety"`
	FederalFoodSafety *float64 `yaml:"federal_food_safety"`
	FederalFireSafety *float64 `yaml:"federal_fire_safety"`
}

type locationFile struct {
	LocationID        string      `yaml:"location_id"`
	LocationName      string      `yaml:"location_name"`
	FoodSafety        recordFile  `yaml:"food_safety"`
	FireSafety        recordFile  `yaml:"fire_safety"`
	FederalFoodSafety *recordFile `yaml:"federal_food_safety"`
	FederalFireSafety *recordFile `yaml:"federal_fire_safety"`
	Scores            scoresFile  `yaml:"scores"`
}

type locationsFile struct {
	Locations []locationFile `yaml:"locations"`
}

// Locations is the result of loading a location fixture file.
type Locations struct {
	Assignments []schema.LocationJurisdiction
	Scores      map[string]schema.PillarScores
}

// readSource returns the file contents, or the embedded default when path is empty.
func readSource(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// LoadProfiles reads a jurisdiction catalog file, or the embedded demo catalog
// when path is empty. Entry order is preserved.
func LoadProfiles(path string) ([]schema.JurisdictionProfile, error) {
	data, err := readSource(path, defaultJurisdictions)
	if err != nil {
		return nil, err
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes catalog YAML. An unrecognized grading type is kept as
// the legacy report_only type and reported as a warning.
func ParseProfiles(data []byte) ([]schema.JurisdictionProfile, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse jurisdiction catalog: %w", err)
	}

	profiles := make([]schema.JurisdictionProfile, 0, len(file.Jurisdictions))
	for i, pf := range file.Jurisdictions {
		profile, err := pf.toProfile()
		if err != nil {
			return nil, fmt.Errorf("jurisdiction #%d: %w", i+1, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (pf profileFile) toProfile() (schema.JurisdictionProfile, error) {
	id := strings.TrimSpace(pf.ID)
	if id == "" {
		return schema.JurisdictionProfile{}, fmt.Errorf("id is required")
	}
	pillar, err := parsePillar(pf.Pillar)
	if err != nil {
		return schema.JurisdictionProfile{}, fmt.Errorf("%s: %w", id, err)
	}
	scoring := schema.ScoringType(pf.ScoringType)
	if _, ok := schema.ValidScoringTypes[scoring]; !ok {
		return schema.JurisdictionProfile{}, fmt.Errorf("%s: invalid scoring_type %q", id, pf.ScoringType)
	}

	return schema.JurisdictionProfile{
		ID:                id,
		County:            pf.County,
		AgencyName:        pf.AgencyName,
		AgencyContact:     pf.AgencyContact,
		Pillar:            pillar,
		ScoringType:       scoring,
		Grading:           gradingConfig(id, schema.GradingType(pf.GradingType), pf.GradingConfig),
		PassThreshold:     pf.PassThreshold,
		WarningThreshold:  pf.WarningThreshold,
		CriticalThreshold: pf.CriticalThreshold,
	}, nil
}

// gradingConfig builds the config variant for the declared grading type.
func gradingConfig(id string, kind schema.GradingType, c gradingConfigFile) schema.GradingConfig {
	switch kind {
	case schema.LetterGrade:
		return schema.LetterGradeConfig{Grades: c.Grades, FailBelow: c.FailBelow}
	case schema.LetterGradeStrict:
		return schema.StrictLetterGradeConfig{PassRequires: c.PassRequires}
	case schema.ColorPlacard:
		return schema.ColorPlacardConfig{GreenMaxMajors: c.GreenMaxMajors, YellowMaxMajors: c.YellowMaxMajors}
	case schema.Score100:
		return schema.Score100Config{}
	case schema.ScoreNegative:
		return schema.NegativeScaleConfig{Warning: c.Warning, Critical: c.Critical}
	case schema.PassReinspect:
		return schema.PassReinspectConfig{}
	case schema.ThreeTierRating:
		return schema.ThreeTierConfig{GoodMaxPoints: c.GoodMaxPoints, SatisfactoryMaxPoints: c.SatisfactoryMaxPoints}
	case schema.ReportOnly:
		return schema.ReportOnlyConfig{}
	default:
		contract.LogWarn(fmt.Sprintf("Jurisdiction %s", id),
			fmt.Errorf("unknown grading_type %q, treating as %s", kind, schema.ReportOnly))
		return schema.ReportOnlyConfig{}
	}
}

func parsePillar(s string) (schema.Pillar, error) {
	switch p := schema.Pillar(strings.TrimSpace(s)); p {
	case schema.FoodSafety, schema.FireSafety:
		return p, nil
	default:
		return "", fmt.Errorf("invalid pillar %q, must be %s or %s", s, schema.FoodSafety, schema.FireSafety)
	}
}

// LoadLocations reads a location fixture file, or the embedded demo fixtures
// when path is empty.
func LoadLocations(path string) (Locations, error) {
	data, err := readSource(path, defaultLocations)
	if err != nil {
		return Locations{}, err
	}
	return ParseLocations(data)
}

// ParseLocations decodes location fixture YAML. Each authority record takes
// its pillar from the section it appears in.
func ParseLocations(data []byte) (Locations, error) {
	var file locationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Locations{}, fmt.Errorf("failed to parse locations: %w", err)
	}

	out := Locations{
		Assignments: make([]schema.LocationJurisdiction, 0, len(file.Locations)),
		Scores:      make(map[string]schema.PillarScores, len(file.Locations)),
	}
	for i, lf := range file.Locations {
		id := strings.TrimSpace(lf.LocationID)
		if id == "" {
			return Locations{}, fmt.Errorf("location #%d: location_id is required", i+1)
		}
		lj := schema.LocationJurisdiction{
			LocationID:   id,
			LocationName: lf.LocationName,
			FoodSafety:   lf.FoodSafety.toRecord(schema.FoodSafety, false),
			FireSafety:   lf.FireSafety.toRecord(schema.FireSafety, false),
		}
		if lf.FederalFoodSafety != nil {
			rec := lf.FederalFoodSafety.toRecord(schema.FoodSafety, true)
			lj.FederalFoodSafety = &rec
		}
		if lf.FederalFireSafety != nil {
			rec := lf.FederalFireSafety.toRecord(schema.FireSafety, true)
			lj.FederalFireSafety = &rec
		}
		out.Assignments = append(out.Assignments, lj)
		out.Scores[id] = schema.PillarScores{
			FoodSafety:        lf.Scores.FoodSafety,
			FireSafety:        lf.Scores.FireSafety,
			FederalFoodSafety: lf.Scores.FederalFoodSafety,
			FederalFireSafety: lf.Scores.FederalFireSafety,
		}
	}
	return out, nil
}

func (rf recordFile) toRecord(pillar schema.Pillar, federal bool) schema.AuthorityRecord {
	return schema.AuthorityRecord{
		Pillar:         pillar,
		JurisdictionID: strings.TrimSpace(rf.JurisdictionID),
		AgencyName:     rf.AgencyName,
		CodeBasis:      rf.CodeBasis,
		Verified:       rf.Verified,
		Federal:        federal,
	}
}
