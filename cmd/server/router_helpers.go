package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"lawconnect.backend/internal/config"
	"lawconnect.backend/internal/infrastructure/storage"
	"lawconnect.backend/internal/interfaces/http/middleware"
)

const serviceName = "lawconnect-backend"

var version = "0.1.0"

func newRouter(cfg *config.Config, deps routeDeps, store storage.Storage) (*gin.Engine, error) {
	r := gin.New()
	// ClientIP keys the auth rate limiter, so forwarding headers only count
	// from configured proxies.
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerUploadsRoute(r, store)
	registerAPIRoutes(r, deps)
	return r, nil
}

func applyCORSMiddleware(r *gin.Engine, origins []string) {
	r.Use(middleware.CORSMiddleware(origins))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": version,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Avatars are served from disk only for the local driver. Stored profile
// paths start with /uploads, the API mount mirrors it under /api.
func registerUploadsRoute(r *gin.Engine, store storage.Storage) {
	local, ok := store.(*storage.LocalStorage)
	if !ok {
		return
	}
	r.Static("/api/uploads", local.Root())
	r.Static("/uploads", local.Root())
}
