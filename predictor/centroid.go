package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

// CentroidModel classifies a reading by the nearest class centroid in feature
// space. The artifact is produced offline from the training set and holds one
// centroid per crop, in training feature order.
type CentroidModel struct {
	classes []centroidClass
}

type centroidClass struct {
	Label    string    `json:"label"`
	Centroid []float64 `json:"centroid"`
}

type modelArtifact struct {
	Classes []centroidClass `json:"classes"`
}

// LoadCentroidModel reads and validates a model artifact. Any defect in the
// artifact is a startup failure, never a per-request one.
func LoadCentroidModel(path string) (*CentroidModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("model artifact %s has no classes", path)
	}

	seen := make(map[string]struct{}, len(artifact.Classes))
	for _, cl := range artifact.Classes {
		if cl.Label == "" {
			return nil, fmt.Errorf("model artifact %s has a class without a label", path)
		}
		if _, dup := seen[cl.Label]; dup {
			return nil, fmt.Errorf("model artifact %s repeats label %q", path, cl.Label)
		}
		seen[cl.Label] = struct{}{}
		if len(cl.Centroid) != models.NumFeatures {
			return nil, fmt.Errorf("model artifact %s: centroid for %q has %d values, want %d",
				path, cl.Label, len(cl.Centroid), models.NumFeatures)
		}
		for _, v := range cl.Centroid {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("model artifact %s: centroid for %q is not finite", path, cl.Label)
			}
		}
	}
	return &CentroidModel{classes: artifact.Classes}, nil
}

// Predict returns the label of the closest centroid by squared Euclidean
// distance. Deterministic for a fixed artifact; ties keep the earlier class.
func (m *CentroidModel) Predict(_ context.Context, features models.FeatureVector) (string, error) {
	best := m.classes[0].Label
	bestDist := math.MaxFloat64
	for _, cl := range m.classes {
		var d float64
		for i := range features {
			diff := features[i] - cl.Centroid[i]
			d += diff * diff
		}
		if d < bestDist {
			bestDist = d
			best = cl.Label
		}
	}
	return best, nil
}

// Labels returns the crops the model can emit, in artifact order.
func (m *CentroidModel) Labels() []string {
	labels := make([]string, len(m.classes))
	for i, cl := range m.classes {
		labels[i] = cl.Label
	}
	return labels
}
