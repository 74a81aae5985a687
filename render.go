package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func renderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	host := describeHost()
	logger.Infof("host: %s, %d logical cores, %d GiB memory", host.CPUModel, host.LogicalCores, host.MemoryGiB)

	sc, err := scene.Build(ctx.String("scene"), scene.Options{
		Width:       ctx.Int("width"),
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return err
	}

	workers := ctx.Int("workers")
	if workers == 0 {
		workers = host.LogicalCores
	}
	config := renderer.MergeSamplingConfig(sc.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      workers,
		Seed:            ctx.Int64("seed"),
	})

	rt, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, renderErr := rt.Render(renderCtx)
	if renderErr != nil && !errors.Is(renderErr, renderer.ErrInterrupted) {
		return renderErr
	}

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	displayRenderStats(stats)
	return renderErr
}

func writePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return f.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
}

// formatRenderStats renders the per-worker tile table
func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "% of tiles", "Busy time"})

	for id, tiles := range stats.WorkerTiles {
		percent := 0.0
		if stats.TilesRendered > 0 {
			percent = 100 * float64(tiles) / float64(stats.TilesRendered)
		}
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", tiles),
			fmt.Sprintf("%02.1f %%", percent),
			stats.WorkerDuration[id].String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.TilesRendered),
		fmt.Sprintf("%d samples (%.0f/s)", stats.TotalSamples, stats.SamplesPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}

// listScenes prints the scene registry
func listScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
	return nil
}
