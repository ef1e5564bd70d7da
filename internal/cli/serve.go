package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/export"
	"github.com/forestlab/rilsim/internal/live"
	"github.com/forestlab/rilsim/internal/simulation"
)

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in listen address %q: %w", addr, err)
	}
	return host, port, nil
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the simulation HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cfg, logger, err := newService(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			host, port, err := splitAddr(addr)
			if err != nil {
				return err
			}
			cfg.Server.Host = host
			cfg.Server.Port = port
		}

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

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		logger.Info("Server started",
			zap.String("addr", cfg.Server.GetServerAddr()),
			zap.String("default_profile", cfg.Engine.DefaultProfile))

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		logger.Info("Server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address as host:port (overrides the config)")
}
