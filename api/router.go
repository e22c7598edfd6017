// SPDX-License-Identifier: MIT

// Package api exposes maze generation and solving over HTTP.
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Logger      logrus.FieldLogger // Request logger; nil discards
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         log,
	}
}

// Handler builds the gin engine with every controller registered under
// <baseURL>/v1.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.log))

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return http.ListenAndServe(r.addr, r.Handler())
}

// requestLogger logs one structured entry per request.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(began).String(),
		})
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Info("request served")
	}
}
