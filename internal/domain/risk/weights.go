package risk

import "fmt"

// FeatureParams bundles everything the model needs for one feature. Keeping
// coefficient, mean and scale under a single key removes the index-alignment
// coupling of the trained artifact's array layout.
type FeatureParams struct {
	Coefficient float64
	Mean        float64
	Scale       float64
}

// ModelWeights is a trained logistic-regression parameter set. Features
// preserves the training-time iteration order; Params is keyed by feature
// name. The value is immutable once constructed.
type ModelWeights struct {
	Intercept float64
	Features  []string
	Params    map[string]FeatureParams
}

func (w ModelWeights) Validate() error {
	for _, name := range w.Features {
		if _, ok := w.Params[name]; !ok {
			return fmt.Errorf("feature %q has no parameters", name)
		}
	}

	return nil
}

// FromAligned builds ModelWeights from the trained artifact's layout, where
// scaler mean and scale arrays are aligned by position with the feature list
// and coefficients are keyed by name. A feature missing from the coefficient
// map keeps a zero coefficient so it contributes nothing to the score.
func FromAligned(intercept float64, features []string, coefficients map[string]float64, means, scales []float64) (ModelWeights, error) {
	if len(means) != len(features) || len(scales) != len(features) {
		return ModelWeights{}, fmt.Errorf(
			"scaler arrays not aligned with feature list: %d features, %d means, %d scales",
			len(features), len(means), len(scales),
		)
	}

	params := make(map[string]FeatureParams, len(features))
	for i, name := range features {
		params[name] = FeatureParams{
			Coefficient: coefficients[name],
			Mean:        means[i],
			Scale:       scales[i],
		}
	}

	return ModelWeights{
		Intercept: intercept,
		Features:  append([]string(nil), features...),
		Params:    params,
	}, nil
}
