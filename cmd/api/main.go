package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/config"
	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/export"
	"github.com/forestlab/rilsim/internal/live"
	"github.com/forestlab/rilsim/internal/simulation"
)

func main() {
	cfg, err := config.Load("config.json")
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Wire the simulation module.
	eng := engine.NewEngine()
	service := simulation.NewService(eng, cfg.Engine.DefaultProfile, logger)
	handler := simulation.NewHandler(service, export.PDFOptions{
		Title:          cfg.Export.ReportTitle,
		Author:         cfg.Export.ReportAuthor,
		FontFamily:     "Arial",
		FontSize:       10,
		TitleFontSize:  16,
		HeaderFontSize: 11,
	}, logger)
	liveManager := live.NewManager(service, logger)
	defer liveManager.Close()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.Server.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api/v1")
	{
		handler.RegisterRoutes(api)
	}

	// Live recomputation socket for the planning UI.
	router.GET("/api/v1/simulation/live", func(c *gin.Context) {
		if _, err := liveManager.HandleConnection(c.Writer, c.Request); err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
		}
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("addr", cfg.Server.GetServerAddr()),
		zap.String("default_profile", cfg.Engine.DefaultProfile))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
