package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GormStore persists observations in a relational table: a sqlite file by
// default, or postgres when a DATABASE_URL is supplied. Concurrent appends
// are serialized by the database, which also assigns the autoincrement id.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the configured database and creates the sensor_data table
// if it does not exist yet. Safe to call on every startup.
func Open(databaseURL, sqlitePath string) (*GormStore, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&models.Observation{}); err != nil {
		return nil, fmt.Errorf("migrate sensor_data: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Append(ctx context.Context, features models.FeatureVector, crop string, at time.Time) (uint, error) {
	obs := models.NewObservation(features, crop, at)
	if err := s.db.WithContext(ctx).Create(&obs).Error; err != nil {
		return 0, fmt.Errorf("append observation: %w", err)
	}
	return obs.ID, nil
}

func (s *GormStore) Recent(ctx context.Context, limit int) ([]models.Observation, error) {
	if limit <= 0 {
		return []models.Observation{}, nil
	}
	rows := make([]models.Observation, 0, limit)
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read recent observations: %w", err)
	}
	return rows, nil
}
