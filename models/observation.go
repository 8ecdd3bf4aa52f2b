package models

import "time"

// Observation is one durably recorded sensor reading together with the crop
// label predicted for it. Rows are write-once: nothing updates or deletes
// them after insert.
type Observation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	N             float64   `json:"N" gorm:"column:n"`
	P             float64   `json:"P" gorm:"column:p"`
	K             float64   `json:"K" gorm:"column:k"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	PH            float64   `json:"ph" gorm:"column:ph"`
	Rainfall      float64   `json:"rainfall"`
	PredictedCrop string    `json:"predicted_crop"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Observation) TableName() string {
	return "sensor_data"
}

// NewObservation builds an unsaved row from a decoded feature vector. The id
// is assigned by the store on append.
func NewObservation(f FeatureVector, crop string, at time.Time) Observation {
	return Observation{
		N:             f[0],
		P:             f[1],
		K:             f[2],
		Temperature:   f[3],
		Humidity:      f[4],
		PH:            f[5],
		Rainfall:      f[6],
		PredictedCrop: crop,
		CreatedAt:     at,
	}
}

// Features reconstructs the vector stored on the row.
func (o Observation) Features() FeatureVector {
	return FeatureVector{o.N, o.P, o.K, o.Temperature, o.Humidity, o.PH, o.Rainfall}
}

// PredictionResult is the ingest response body.
type PredictionResult struct {
	PredictedCrop string `json:"predicted_crop"`
}
