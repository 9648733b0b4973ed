package player

import (
	"fmt"
	"strings"
)

// Severity is the canonical injury taxonomy. The ordinal weight grows with
// expected workload impact; chronic injuries weigh more than a single major
// event because they recur.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityChronic  Severity = "chronic"
)

var severityWeights = map[Severity]int{
	SeverityMinor:    1,
	SeverityModerate: 2,
	SeverityMajor:    3,
	SeverityChronic:  5,
}

// Weight returns the ordinal scoring weight, zero for unknown severities.
func (s Severity) Weight() int {
	return severityWeights[s]
}

func ParseSeverity(raw string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityMinor:
		return SeverityMinor, nil
	case SeverityModerate:
		return SeverityModerate, nil
	case SeverityMajor:
		return SeverityMajor, nil
	case SeverityChronic:
		return SeverityChronic, nil
	default:
		return "", fmt.Errorf("unknown injury severity: %q", raw)
	}
}

// BodyRegion groups free-text body-part descriptors into coarse buckets for
// display. It is derived enrichment, never an input to scoring.
type BodyRegion string

const (
	RegionLowerLeg  BodyRegion = "lower_leg"
	RegionUpperLeg  BodyRegion = "upper_leg"
	RegionFootAnkle BodyRegion = "foot_ankle"
	RegionBack      BodyRegion = "back"
	RegionUpperBody BodyRegion = "upper_body"
	RegionUnknown   BodyRegion = "unknown"
)

var regionKeywords = []struct {
	keyword string
	region  BodyRegion
}{
	{"ankle", RegionFootAnkle},
	{"foot", RegionFootAnkle},
	{"toe", RegionFootAnkle},
	{"achilles", RegionFootAnkle},
	{"knee", RegionLowerLeg},
	{"calf", RegionLowerLeg},
	{"shin", RegionLowerLeg},
	{"hamstring", RegionUpperLeg},
	{"quad", RegionUpperLeg},
	{"groin", RegionUpperLeg},
	{"hip", RegionUpperLeg},
	{"back", RegionBack},
	{"spine", RegionBack},
	{"shoulder", RegionUpperBody},
	{"wrist", RegionUpperBody},
	{"hand", RegionUpperBody},
	{"finger", RegionUpperBody},
	{"elbow", RegionUpperBody},
}

// RegionFromDescription maps a free-text body-part descriptor onto a
// BodyRegion, returning RegionUnknown when nothing matches.
func RegionFromDescription(raw string) BodyRegion {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return RegionUnknown
	}
	for _, entry := range regionKeywords {
		if strings.Contains(text, entry.keyword) {
			return entry.region
		}
	}
	return RegionUnknown
}

// InjuryRecord is one historical injury event.
type InjuryRecord struct {
	Year         int
	Severity     Severity
	GamesMissed  int
	RecoveryDays int
	BodyPart     string
	Region       BodyRegion
}

func (r InjuryRecord) Validate() error {
	if _, ok := severityWeights[r.Severity]; !ok {
		return fmt.Errorf("invalid injury severity: %s", r.Severity)
	}
	if r.GamesMissed < 0 {
		return fmt.Errorf("games missed must not be negative")
	}
	if r.RecoveryDays < 0 {
		return fmt.Errorf("recovery days must not be negative")
	}

	return nil
}

// WithRegion returns a copy with Region derived from the body-part text when
// it was not set explicitly.
func (r InjuryRecord) WithRegion() InjuryRecord {
	if r.Region == "" {
		r.Region = RegionFromDescription(r.BodyPart)
	}
	return r
}

// SeverityScore sums the ordinal weights of an injury list.
func SeverityScore(injuries []InjuryRecord) int {
	total := 0
	for _, injury := range injuries {
		total += injury.Severity.Weight()
	}
	return total
}
