package main

import (
	"github.com/chayon20/Crop-Recommendation-System/config"
	"github.com/chayon20/Crop-Recommendation-System/controllers"
	"github.com/chayon20/Crop-Recommendation-System/middlewares"
	"github.com/chayon20/Crop-Recommendation-System/predictor"
	"github.com/chayon20/Crop-Recommendation-System/storage"
	"github.com/chayon20/Crop-Recommendation-System/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	// Connect to the observation database and create the schema if missing
	store, err := storage.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to open observation store", "error", err)
	}

	// The model must load before the listener starts; a broken artifact or
	// predictor endpoint means no traffic is served at all.
	pred, err := buildPredictor(cfg)
	if err != nil {
		log.Fatalw("failed to load predictor", "error", err)
	}

	clock, err := utils.NewLocalClock(cfg.Timezone)
	if err != nil {
		log.Fatalw("failed to load timezone", "timezone", cfg.Timezone, "error", err)
	}

	hub := controllers.NewHub(log)
	sensors := &controllers.SensorController{
		Store:        store,
		Predictor:    pred,
		Clock:        clock,
		Hub:          hub,
		Log:          log,
		Timeout:      cfg.RequestTimeout,
		HistoryLimit: cfg.HistoryLimit,
		ExportLimit:  cfg.ExportLimit,
	}

	// Set up Gin router with CORS configuration
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/sensor", sensors.Ingest)
	r.GET("/api/latest", sensors.Latest)
	r.GET("/api/latest.csv", sensors.DownloadCSV)
	r.GET("/ws", hub.Handle)
	r.GET("/healthz", controllers.Healthz)
	r.GET("/metrics", middlewares.MetricsHandler())

	log.Infow("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

func buildPredictor(cfg config.Config) (predictor.Predictor, error) {
	if cfg.PredictURL != "" {
		return predictor.NewRemote(cfg.PredictURL, cfg.RequestTimeout)
	}
	return predictor.LoadCentroidModel(cfg.ModelPath)
}
