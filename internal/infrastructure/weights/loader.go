package weights

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/hoopsight/courtload/internal/domain/risk"
)

// artifact mirrors the trained model export: coefficients keyed by feature
// name, scaler arrays aligned by position with the feature list.
type artifact struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	ScalerMean   []float64          `json:"scaler_mean"`
	ScalerScale  []float64          `json:"scaler_scale"`
	Features     []string           `json:"features"`
}

//go:embed default_weights.json
var defaultArtifact []byte

// Load reads a trained weight artifact from disk. An empty path selects the
// embedded default artifact so the service always starts with a usable model.
func Load(path string) (risk.ModelWeights, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return risk.ModelWeights{}, fmt.Errorf("read weights file %s: %w", path, err)
	}

	weights, err := parse(raw)
	if err != nil {
		return risk.ModelWeights{}, fmt.Errorf("parse weights file %s: %w", path, err)
	}
	return weights, nil
}

// Default returns the model weights compiled into the binary.
func Default() (risk.ModelWeights, error) {
	weights, err := parse(defaultArtifact)
	if err != nil {
		return risk.ModelWeights{}, fmt.Errorf("parse embedded weights: %w", err)
	}
	return weights, nil
}

func parse(raw []byte) (risk.ModelWeights, error) {
	var a artifact
	if err := sonic.Unmarshal(raw, &a); err != nil {
		return risk.ModelWeights{}, fmt.Errorf("unmarshal artifact: %w", err)
	}
	if len(a.Features) == 0 {
		return risk.ModelWeights{}, fmt.Errorf("artifact has no features")
	}

	weights, err := risk.FromAligned(a.Intercept, a.Features, a.Coefficients, a.ScalerMean, a.ScalerScale)
	if err != nil {
		return risk.ModelWeights{}, err
	}
	if err := weights.Validate(); err != nil {
		return risk.ModelWeights{}, err
	}
	return weights, nil
}
