package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unalbahadir/lawyer-assistant/pkg/backend"
	"github.com/unalbahadir/lawyer-assistant/pkg/config"
	"github.com/unalbahadir/lawyer-assistant/pkg/event"
	"github.com/unalbahadir/lawyer-assistant/pkg/handler"
	"github.com/unalbahadir/lawyer-assistant/pkg/models"
	"github.com/unalbahadir/lawyer-assistant/pkg/service"
	"github.com/unalbahadir/lawyer-assistant/pkg/utils"
)

// Server hosts the local UI API and the event WebSocket.
type Server struct {
	ginEngine *gin.Engine
	cfg       *config.AppConfig
	logger    *slog.Logger
	port      int
}

func NewServer(cfg *config.AppConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	ginEngine := gin.New()
	ginEngine.Use(gin.Recovery())

	// CORS middleware: the UI is served from localhost dev servers or a
	// packaged shell; nothing else should talk to this process.
	ginEngine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// If there's no Origin header, it's not a browser CORS request.
		if origin != "" {
			allowed := strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1") ||
				strings.HasPrefix(origin, "https://localhost") ||
				strings.HasPrefix(origin, "https://127.0.0.1")

			if allowed {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			} else {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	server := &Server{
		ginEngine: ginEngine,
		cfg:       cfg,
		logger:    utils.GetLogger(),
	}

	server.SetupRoutes()

	return server
}

func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host(), s.cfg.Port())
	srv := &http.Server{Addr: addr, Handler: s.ginEngine}

	// Listen first; if the port is occupied return the error immediately.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	} else {
		s.port = s.cfg.Port()
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	default:
	}

	s.logger.Info("Local API listening", "addr", addr, "backend", s.cfg.BackendURL())
	return nil
}

func (s *Server) SetupRoutes() {
	// One backend client and one workspace session for the whole process;
	// opening a new case supersedes the previous session entirely.
	backendClient := backend.NewClient(s.cfg.BackendURL())
	workspaceService := service.NewWorkspaceService(backendClient)

	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, s.logger)
	wsHandler := event.NewWSHandler()

	apiGroup := s.ginEngine.Group("/api")

	// Runtime info for the UI to discover its base URLs.
	apiGroup.GET("/runtime", func(c *gin.Context) {
		host := "127.0.0.1"
		port := s.port
		if port == 0 {
			port = s.cfg.Port()
		}

		c.JSON(http.StatusOK, models.RuntimeInfo{
			HTTPBaseURL: fmt.Sprintf("http://%s:%d", host, port),
			WSBaseURL:   fmt.Sprintf("ws://%s:%d", host, port),
			Port:        port,
		})
	})

	// Event notification stream.
	// /api/events/ws?events=chat.changed,documents.changed
	apiGroup.GET("/events/ws", wsHandler.Handle)

	workspaceHandler.RegisterRoutes(apiGroup)
}
