package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/diillson/dfc-dashboard-go/internal/adapter/driving/api/handlers"
	"github.com/diillson/dfc-dashboard-go/internal/adapter/driving/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "dfc-dashboard"

// NewRouter monta as rotas HTTP do relatório.
func NewRouter(builder handlers.ReportBuilder, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	responses.SetLogger(logger)

	dfcHandler := handlers.NewDfcHandler(builder)

	router := gin.New()
	router.Use(gin.Recovery(), accessLog(logger))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/dfc", dfcHandler.HandleDfc)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": serviceName})
	})

	return router
}

// Serve atende em addr até ctx ser cancelado e então encerra as conexões.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("api listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
