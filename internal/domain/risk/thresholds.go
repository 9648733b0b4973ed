package risk

// MinuteStep is one rung of the discrete minutes-restriction ladder.
type MinuteStep struct {
	RiskAtLeast float64
	Multiplier  float64
}

// Thresholds collects every tunable constant of the scoring pipeline in one
// place so call sites never inline their own copies and tests assert against
// a single source of truth.
type Thresholds struct {
	// Baseline model calibration.
	CalibrationGain float64
	BaselineFloor   float64
	BaselineCeiling float64
	NeutralRisk     float64

	// Age surcharge.
	AgeSurchargeAfter  int
	AgeSurchargePerYear float64
	RiskCeiling         float64

	// Classification cutoffs.
	ModerateAtLeast float64
	HighAtLeast     float64

	// Minutes recommendation ladder, highest rung first.
	MinuteSteps []MinuteStep

	// Contact-rate factor banding.
	HighContactAtLeast     float64
	ModerateContactAtLeast float64

	// Dynamic projection bonuses.
	BackToBackBonus  float64
	ThreeInFourBonus float64
	NoRestBonus      float64
	AwayBonus        float64

	// Cumulative fatigue.
	HighStressAtLeast float64
	FatiguePerGame    float64

	// Vision blending defaults. The stored per-player record trusts the
	// statistical baseline far more than a single analyzed clip; the
	// ad-hoc combiner weighs the clip heavily on purpose.
	StoredVisionWeight float64
	AdhocVisionWeight  float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CalibrationGain: 60,
		BaselineFloor:   3,
		BaselineCeiling: 65,
		NeutralRisk:     50,

		AgeSurchargeAfter:   32,
		AgeSurchargePerYear: 2,
		RiskCeiling:         100,

		ModerateAtLeast: 45,
		HighAtLeast:     65,

		MinuteSteps: []MinuteStep{
			{RiskAtLeast: 85, Multiplier: 0.80},
			{RiskAtLeast: 75, Multiplier: 0.85},
			{RiskAtLeast: 65, Multiplier: 0.90},
			{RiskAtLeast: 55, Multiplier: 0.95},
		},

		HighContactAtLeast:     8,
		ModerateContactAtLeast: 4,

		BackToBackBonus:  8,
		ThreeInFourBonus: 5,
		NoRestBonus:      3,
		AwayBonus:        2,

		HighStressAtLeast: 1.3,
		FatiguePerGame:    1.5,

		StoredVisionWeight: 0.05,
		AdhocVisionWeight:  0.4,
	}
}
