package risk

import (
	"math"
	"sort"
)

// Predict computes the baseline risk score for a feature vector, before any
// age adjustment. The result lies in [BaselineFloor, BaselineCeiling].
//
// Each declared feature is standardized against its stored mean and scale,
// weighted, and accumulated from the intercept; the sum goes through a
// logistic squash and is calibrated by CalibrationGain to land in an
// operator-intuitive band. A weight set with no declared features yields
// NeutralRisk instead of an error so callers always get a usable number.
func Predict(w ModelWeights, features FeatureVector, th Thresholds) float64 {
	if len(w.Features) == 0 {
		return th.NeutralRisk
	}

	z := w.Intercept
	for _, name := range w.Features {
		params, ok := w.Params[name]
		if !ok {
			continue
		}
		z += params.Coefficient * standardize(features[name], params)
	}

	probability := sigmoid(z)
	return round2(clamp(probability*th.CalibrationGain, th.BaselineFloor, th.BaselineCeiling))
}

// Contribution is one feature's share of the model score.
type Contribution struct {
	Feature  string
	Absolute float64
}

// Contributions returns each declared feature's absolute standardized
// contribution, sorted descending. Ties keep declaration order.
func Contributions(w ModelWeights, features FeatureVector) []Contribution {
	out := make([]Contribution, 0, len(w.Features))
	for _, name := range w.Features {
		params, ok := w.Params[name]
		if !ok {
			continue
		}
		out = append(out, Contribution{
			Feature:  name,
			Absolute: math.Abs(params.Coefficient * standardize(features[name], params)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Absolute > out[j].Absolute
	})

	return out
}

func standardize(value float64, params FeatureParams) float64 {
	if params.Scale == 0 {
		return 0
	}
	return (value - params.Mean) / params.Scale
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
