package storage

import (
	"context"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

// ObservationStore is the append-only persistence layer for labeled sensor
// readings. Implementations must keep ids strictly increasing in insertion
// order and must never update or delete a stored row.
type ObservationStore interface {
	// Append inserts a new observation and returns the id the store assigned.
	Append(ctx context.Context, features models.FeatureVector, crop string, at time.Time) (uint, error)

	// Recent returns up to limit observations ordered by descending id,
	// newest first. A non-positive limit yields an empty result.
	Recent(ctx context.Context, limit int) ([]models.Observation, error)
}
