// Package server exposes the booking decision engine over HTTP for the
// wizard frontend.
package server

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/aniolquer/node-smart-form/internal/config"
	"github.com/aniolquer/node-smart-form/internal/submit"
	"github.com/aniolquer/node-smart-form/pkg/rates"
)

// Server wires the engine's pure functions to HTTP handlers.
type Server struct {
	cfg    config.Config
	table  rates.Table
	submit *submit.Client
}

// New creates a server over the given rate table.
func New(cfg config.Config, table rates.Table) *Server {
	return &Server{
		cfg:    cfg,
		table:  table,
		submit: submit.NewClient(cfg.SubmitEndpoint),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors())

	router.GET("/health", s.handleHealth)
	router.GET("/api/units", s.handleUnits)
	router.POST("/api/estimate", s.handleEstimate)
	router.POST("/api/documents", s.handleDocuments)
	router.POST("/api/evaluate", s.handleEvaluate)
	router.POST("/api/submit", s.handleSubmit)

	return router
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Printf("booking wizard API starting on http://localhost%s", addr)
	return s.Router().Run(addr)
}

// cors allows the wizard frontend to call the API from another origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
