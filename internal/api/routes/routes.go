package routes

import (
	"time"

	"org-simulator/internal/api/handlers"
	"org-simulator/internal/config"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures the read-only inspection server
func SetupRoutes(db handlers.Pinger, summaryRepo repository.SummaryRepositoryInterface, rec *metrics.Recorder, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(requestLogger())
	router.Use(gin.Recovery())

	// Initialize services
	reportService := service.NewReportService(summaryRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if rec != nil {
		router.GET("/metrics", gin.WrapH(rec.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/report", reportHandler.GetReport)
	}

	logrus.WithField("environment", cfg.Environment).Debug("Routes registered")
	return router
}

// requestLogger logs one structured line per request
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request handled")
	}
}
