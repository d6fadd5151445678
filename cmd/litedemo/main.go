// Command litedemo renders a sketch file, or a built-in showcase of every
// lite shape, to a PNG or BMP file or to the terminal.
//
//	litedemo -o demo.png
//	litedemo -sketch scene.toml -scale 4 -o scene.png
//	litedemo -sketch scene.yaml -ansi
//	litedemo -sketch scene.toml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/muesli/termenv"

	"github.com/gogpu/lite"
	"github.com/gogpu/lite/present/ansi"
	"github.com/gogpu/lite/present/term"
	"github.com/gogpu/lite/sketch"
)

type config struct {
	sketch  string
	output  string
	width   int
	height  int
	scale   int
	show    bool
	ansi    bool
	watch   bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.sketch, "sketch", "", "sketch file (.toml, .yaml); empty renders the showcase")
	flag.StringVar(&cfg.output, "o", "litedemo.png", "output file (.png or .bmp); empty skips writing")
	flag.IntVar(&cfg.width, "width", 320, "showcase width")
	flag.IntVar(&cfg.height, "height", 200, "showcase height")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the output file")
	flag.BoolVar(&cfg.show, "show", false, "show the result in an interactive terminal screen")
	flag.BoolVar(&cfg.ansi, "ansi", false, "print the result to stdout as colored text")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render whenever the sketch file changes")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	lite.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "litedemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	if cfg.scale < 1 {
		return fmt.Errorf("-scale must be at least 1, got %d", cfg.scale)
	}
	if cfg.watch {
		if cfg.sketch == "" {
			return fmt.Errorf("-watch needs -sketch")
		}
		return watch(ctx, cfg, logger)
	}

	c, err := render(cfg)
	if err != nil {
		return err
	}
	return present(ctx, c, cfg, logger)
}

func render(cfg config) (*lite.Canvas, error) {
	if cfg.sketch == "" {
		if cfg.width <= 0 || cfg.height <= 0 {
			return nil, fmt.Errorf("bad showcase size %dx%d", cfg.width, cfg.height)
		}
		c := lite.NewCanvas(cfg.width, cfg.height)
		drawShowcase(c)
		return c, nil
	}
	doc, err := sketch.Load(cfg.sketch)
	if err != nil {
		return nil, err
	}
	return sketch.Render(doc)
}

// present sends c to every output cfg asks for.
func present(ctx context.Context, c *lite.Canvas, cfg config, logger *slog.Logger) error {
	if cfg.output != "" {
		if err := save(c, cfg.output, cfg.scale); err != nil {
			return err
		}
		logger.Info("saved", "path", cfg.output, "width", c.Width()*cfg.scale, "height", c.Height()*cfg.scale)
	}
	if cfg.ansi {
		if err := ansi.Write(os.Stdout, c.Width(), c.Height(), c.Pix(), termenv.EnvColorProfile()); err != nil {
			return err
		}
	}
	if cfg.show {
		return term.Show(ctx, c.Width(), c.Height(), c.Pix())
	}
	return nil
}
