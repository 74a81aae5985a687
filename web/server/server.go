package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// Config controls the HTTP server
type Config struct {
	Port        int
	TexturePath string // Image used by textured scenes such as earth
	NumWorkers  int    // Render workers per request; 0 uses every CPU
}

// Server serves the render API
type Server struct {
	config Config
	echo   *echo.Echo
	logger log.Logger
}

// NewServer creates a new web server and registers its routes
func NewServer(config Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		config: config,
		echo:   e,
		logger: log.New("server"),
	}

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/scene-config", s.handleSceneConfig)
	e.GET("/api/render", s.handleRender)
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured port and blocks until the server stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

// Shutdown stops the server, letting in-flight renders finish until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.List())
}

// handleSceneConfig returns the recommended configuration for a scene
func (s *Server) handleSceneConfig(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = defaultScene
	}

	sc, err := s.buildScene(name, 0)
	if err != nil {
		return errorResponse(c, err)
	}

	width, height := sc.Camera.ImageSize()
	config := sc.SamplingConfig
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scene": name,
		"defaults": map[string]int{
			"width":           width,
			"height":          height,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
		},
		"limits": map[string]map[string]int{
			"width": {"min": minWidth, "max": maxWidth},
			"spp":   {"min": 1, "max": maxSamples},
			"depth": {"min": 1, "max": maxDepth},
		},
	})
}

func (s *Server) buildScene(name string, width int) (*scene.Scene, error) {
	return scene.Build(name, scene.Options{Width: width, TexturePath: s.config.TexturePath})
}

// errorResponse maps scene and parameter errors to client errors
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	if isClientError(err) {
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid %s: %s", errBadParam, key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%w: %s must be between %d and %d, got: %d", errBadParam, key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseSeedParam parses an optional non-zero 64-bit seed
func parseSeedParam(values url.Values, key string) (int64, error) {
	value := values.Get(key)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("%w: invalid %s: %s", errBadParam, key, value)
	}
	return parsed, nil
}
