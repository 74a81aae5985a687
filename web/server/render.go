package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

const (
	defaultScene = "cornell"
	minWidth     = 16
	maxWidth     = 2000
	maxSamples   = 10000
	maxDepth     = 500
)

var errBadParam = errors.New("bad parameter")

// RenderRequest holds the parsed query of a render call. Zero fields keep the
// scene's recommended values.
type RenderRequest struct {
	Scene           string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

func isClientError(err error) bool {
	return errors.Is(err, errBadParam) ||
		errors.Is(err, scene.ErrUnknownScene) ||
		errors.Is(err, scene.ErrMissingTexture)
}

// parseRenderRequest reads and validates render parameters
func parseRenderRequest(c echo.Context) (RenderRequest, error) {
	values := c.QueryParams()
	req := RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, minWidth, maxWidth); err != nil {
		return req, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 0, 1, maxSamples); err != nil {
		return req, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 0, 1, maxDepth); err != nil {
		return req, err
	}
	if req.Seed, err = parseSeedParam(values, "seed"); err != nil {
		return req, err
	}
	return req, nil
}

// handleRender renders a scene and responds with a PNG. The render stops
// early if the client goes away.
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return errorResponse(c, err)
	}

	sc, err := s.buildScene(req.Scene, req.Width)
	if err != nil {
		return errorResponse(c, err)
	}

	config := renderer.MergeSamplingConfig(sc.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		NumWorkers:      s.config.NumWorkers,
		Seed:            req.Seed,
	})

	rt, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return errorResponse(c, err)
	}

	width, height := rt.Size()
	if width*height > 800*600 && config.SamplesPerPixel > 100 {
		s.logger.Warningf("large render requested: %dx%d at %d spp", width, height, config.SamplesPerPixel)
	}

	img, stats, err := rt.Render(c.Request().Context())
	if errors.Is(err, renderer.ErrInterrupted) {
		s.logger.Infof("render of %s canceled by client", req.Scene)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return errorResponse(c, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	s.logger.Infof("rendered %s %dx%d in %v", req.Scene, width, height, stats.Duration)

	header := c.Response().Header()
	header.Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
