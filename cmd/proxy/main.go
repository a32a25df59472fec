// The proxy binary fronts the aviationstack API so browser clients never
// see the access key. It serves exactly one route and runs on its own port.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skyways/internal/config"
	"skyways/internal/external"
	"skyways/internal/logger"
	"skyways/internal/middleware"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	gin.SetMode(cfg.GinMode)

	client := external.NewFlightDataClient(cfg.FlightData)

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	router.GET("/api/flights", func(c *gin.Context) {
		statuses, err := client.DelhiMumbaiFlights(c.Request.Context())
		if err != nil {
			if errors.Is(err, external.ErrNoFlights) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No flights found."})
				return
			}
			log.Error("Flight data fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flight data."})
			return
		}
		c.JSON(http.StatusOK, statuses)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.FlightData.Port,
		Handler: router,
	}

	go func() {
		log.Info("Starting flight data proxy", "port", cfg.FlightData.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start proxy", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down proxy")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Proxy forced to shutdown", "error", err)
	}
}
