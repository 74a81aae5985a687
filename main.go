package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func newApp() *cli.App {
	// Free -v for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte-Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "minimum level to log: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Build the named scene, trace it with a pool of tile workers and write the
frame to disk. Sampling flags left at zero keep the scene's recommended
values. Interrupting the render saves the tiles finished so far.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; height follows the scene's aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers; 0 uses every logical core",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base random seed; 0 keeps the scene default",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for textured scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: renderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers per request; 0 uses every logical core",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for textured scenes",
				},
			},
			Action: serve,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, ok := log.ParseLevel(name)
		if !ok {
			return fmt.Errorf("unknown log level %q", name)
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
