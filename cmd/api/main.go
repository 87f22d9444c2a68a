package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CareLinkServices/care-scheduler/internal/config"
	dbpkg "github.com/CareLinkServices/care-scheduler/internal/db"
	"github.com/CareLinkServices/care-scheduler/internal/logger"
	"github.com/CareLinkServices/care-scheduler/internal/middleware"
	"github.com/CareLinkServices/care-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	zapLog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLog.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(zapLog))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zapLog)

	zapLog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zapLog.Fatal("failed to start server", zap.Error(err))
	}
}
