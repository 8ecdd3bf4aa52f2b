package controllers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/middlewares"
	"github.com/chayon20/Crop-Recommendation-System/models"
	"github.com/chayon20/Crop-Recommendation-System/predictor"
	"github.com/chayon20/Crop-Recommendation-System/storage"
	"github.com/chayon20/Crop-Recommendation-System/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	defaultExportLimit  = 1000
	defaultTimeout      = 5 * time.Second
)

// SensorController owns the ingest and read-back endpoints. All collaborators
// are injected; the controller itself holds no per-request state.
type SensorController struct {
	Store        storage.ObservationStore
	Predictor    predictor.Predictor
	Clock        utils.Clock
	Hub          *Hub
	Log          *zap.SugaredLogger
	Timeout      time.Duration
	HistoryLimit int
	ExportLimit  int
}

// Ingest handles POST /sensor: decode the raw reading, predict, stamp,
// persist, respond. The durable write is the last step before the success
// response, so a stored row is never unacknowledged and an acknowledged
// prediction is never unstored.
func (sc *SensorController) Ingest(c *gin.Context) {
	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	features, err := models.DecodeFeatures(record)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ctx, cancel := sc.boundedContext(c)
	defer cancel()

	crop, err := sc.Predictor.Predict(ctx, features)
	if err != nil {
		sc.Log.Errorw("prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed"})
		return
	}

	at := sc.Clock.Now()
	id, err := sc.Store.Append(ctx, features, crop, at)
	if err != nil {
		sc.Log.Errorw("failed to store observation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store sensor data"})
		return
	}

	middlewares.CountPrediction(crop)

	if sc.Hub != nil {
		obs := models.NewObservation(features, crop, at)
		obs.ID = id
		sc.Hub.Broadcast(obs)
	}

	c.JSON(http.StatusOK, models.PredictionResult{PredictedCrop: crop})
}

// Latest handles GET /api/latest: up to the configured limit of observations,
// newest first.
func (sc *SensorController) Latest(c *gin.Context) {
	ctx, cancel := sc.boundedContext(c)
	defer cancel()

	rows, err := sc.Store.Recent(ctx, sc.historyLimit())
	if err != nil {
		sc.Log.Errorw("failed to fetch history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DownloadCSV streams recent observations as a CSV attachment.
func (sc *SensorController) DownloadCSV(c *gin.Context) {
	ctx, cancel := sc.boundedContext(c)
	defer cancel()

	rows, err := sc.Store.Recent(ctx, sc.exportLimit())
	if err != nil {
		sc.Log.Errorw("failed to export observations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=sensor_data.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"id", "N", "P", "K", "temperature", "humidity", "ph", "rainfall", "predicted_crop", "created_at"})
	for _, row := range rows {
		writer.Write([]string{
			strconv.FormatUint(uint64(row.ID), 10),
			fmt.Sprintf("%.2f", row.N),
			fmt.Sprintf("%.2f", row.P),
			fmt.Sprintf("%.2f", row.K),
			fmt.Sprintf("%.2f", row.Temperature),
			fmt.Sprintf("%.2f", row.Humidity),
			fmt.Sprintf("%.2f", row.PH),
			fmt.Sprintf("%.2f", row.Rainfall),
			row.PredictedCrop,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (sc *SensorController) boundedContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := sc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

func (sc *SensorController) historyLimit() int {
	if sc.HistoryLimit <= 0 {
		return defaultHistoryLimit
	}
	return sc.HistoryLimit
}

func (sc *SensorController) exportLimit() int {
	if sc.ExportLimit <= 0 {
		return defaultExportLimit
	}
	return sc.ExportLimit
}
