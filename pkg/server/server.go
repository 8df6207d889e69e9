// Package server exposes the voice session over WebSocket. Binary frames
// carry raw PCM16 audio in both directions; text frames carry the JSON
// protocol envelopes.
package server

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/sameersinha-collab/echoproj/internal/log"
	"github.com/sameersinha-collab/echoproj/pkg/session"
)

// Server is the WebSocket front of the voice service.
type Server struct {
	app  *fiber.App
	deps session.Deps
	port int

	started time.Time
	active  atomic.Int64
}

// New builds the fiber app with the session endpoint and health routes.
func New(port int, deps session.Deps) *Server {
	s := &Server{
		deps:    deps,
		port:    port,
		started: time.Now(),
	}

	app := fiber.New(fiber.Config{
		AppName:               "wippi-voice-server",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	app.Get("/healthz", s.handleHealth)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(s.handleSession))

	s.app = app
	return s
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": s.active.Load(),
		"uptime":   time.Since(s.started).Round(time.Second).String(),
	})
}

// Listen blocks serving connections until Shutdown.
func (s *Server) Listen() error {
	log.Info("listening", "port", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

// Shutdown gracefully stops the server, waiting up to timeout for open
// connections to finish.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}
