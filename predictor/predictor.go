package predictor

import (
	"context"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

// Predictor maps a feature vector to a crop label. Implementations are
// constructed once at startup; a model that cannot be loaded must keep the
// process from serving traffic at all, so per-request failures are limited to
// transport faults and timeouts.
type Predictor interface {
	Predict(ctx context.Context, features models.FeatureVector) (string, error)
}
