package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/rviscarra/x11-screen-grab/internal/api"
	"github.com/rviscarra/x11-screen-grab/internal/config"
	"github.com/rviscarra/x11-screen-grab/internal/encoders"
	"github.com/rviscarra/x11-screen-grab/internal/logging"
	"github.com/rviscarra/x11-screen-grab/internal/xgrab"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	display := flag.String("display", "", "X display to capture (defaults to $DISPLAY)")
	x := flag.Int("x", 0, "Region origin, horizontal")
	y := flag.Int("y", 0, "Region origin, vertical")
	width := flag.Int("width", 0, "Region width, 0 captures to the screen edge")
	height := flag.Int("height", 0, "Region height, 0 captures to the screen edge")
	out := flag.String("out", "", "Output file, defaults to a generated name")
	format := flag.String("format", "", "Output format, png or jpeg")
	scale := flag.Float64("scale", 0, "Downscale factor applied before encoding")
	serve := flag.Bool("serve", false, "Serve captures over HTTP instead of capturing once")
	httpPort := flag.String("http.port", "", "HTTP listen port in serve mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't load config: %v\n", err)
		os.Exit(1)
	}
	// flags win over the config file
	if *display != "" {
		cfg.Display = *display
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *width != 0 {
		cfg.Region.Width = *width
	}
	if *height != 0 {
		cfg.Region.Height = *height
	}
	if *x != 0 {
		cfg.Region.X = *x
	}
	if *y != 0 {
		cfg.Region.Y = *y
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't init logging: %v\n", err)
		os.Exit(1)
	}

	grabber := xgrab.New(xgrab.NewX11Backend(), xgrab.Config{Display: cfg.Display})

	if *serve {
		runServer(grabber, cfg, logger)
		return
	}
	if err := captureOnce(grabber, cfg, *out, logger); err != nil {
		logger.Error("capture failed", "error", err)
		os.Exit(1)
	}
}

func captureOnce(grabber *xgrab.Grabber, cfg config.Config, out string, logger *slog.Logger) error {
	codec, err := encoders.CodecFromName(cfg.Format)
	if err != nil {
		return err
	}
	encoder, err := encoders.NewEncoderService().NewEncoder(codec)
	if err != nil {
		return err
	}

	region := cfg.Region
	if region.Width == 0 || region.Height == 0 {
		geom, err := grabber.Geometry()
		if err != nil {
			return err
		}
		if region.Width == 0 {
			region.Width = geom.Width - region.X
		}
		if region.Height == 0 {
			region.Height = geom.Height - region.Y
		}
	}

	pixels, err := grabber.Capture(region.X, region.Y, region.Width, region.Height)
	if err != nil {
		return err
	}
	frame := xgrab.ToRGBA(pixels, region.Width, region.Height)

	if cfg.Scale > 0 && cfg.Scale != 1 {
		target := image.Pt(
			int(float64(region.Width)*cfg.Scale),
			int(float64(region.Height)*cfg.Scale),
		)
		frame = encoders.ScaleImage(frame, target)
	}

	if out == "" {
		name := fmt.Sprintf("%s.%s", uuid.New().String(), encoder.Extension())
		out = filepath.Join(cfg.Output, name)
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := encoder.Encode(file, frame); err != nil {
		return err
	}

	logger.Info("capture written", "path", out,
		"width", region.Width, "height", region.Height)
	return nil
}

func runServer(grabber *xgrab.Grabber, cfg config.Config, logger *slog.Logger) {
	mux := http.NewServeMux()
	handler := api.MakeHandler(grabber, encoders.NewEncoderService(), logger)
	mux.Handle("/api/", http.StripPrefix("/api", handler))

	errors := make(chan error, 2)
	go func() {
		logger.Info("starting capture server", "port", cfg.HTTPPort)
		errors <- http.ListenAndServe(fmt.Sprintf(":%s", cfg.HTTPPort), mux)
	}()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		errors <- fmt.Errorf("received %v signal", <-interrupt)
	}()

	err := <-errors
	logger.Info("exiting", "reason", err)
}
