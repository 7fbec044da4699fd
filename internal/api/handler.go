package api

import (
	"encoding/json"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rviscarra/x11-screen-grab/internal/encoders"
	"github.com/rviscarra/x11-screen-grab/internal/xgrab"
)

// Display is the part of the capture core the handler consumes
type Display interface {
	Capture(x, y, w, h int) ([]uint32, error)
	Geometry() (xgrab.Geometry, error)
}

func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("request failed", "error", err)
	if errors.Is(err, xgrab.ErrOutOfBounds) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// MakeHandler returns an HTTP handler for the capture service
func MakeHandler(display Display, enc encoders.Service, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/screen", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		geom, err := display.Geometry()
		if err != nil {
			handleError(w, logger, err)
			return
		}

		payload, err := json.Marshal(screenResponse{
			Width:  geom.Width,
			Height: geom.Height,
			Depth:  geom.Depth,
		})
		if err != nil {
			handleError(w, logger, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	})

	mux.HandleFunc("/capture", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var region [4]int
		var err error
		for i, name := range []string{"x", "y", "width", "height"} {
			region[i], err = queryInt(r, name, 0)
			if err != nil {
				logger.Error("bad capture request", "param", name, "error", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}
		serveCapture(w, r, display, enc, logger, region[0], region[1], region[2], region[3])
	})

	return mux
}

func serveCapture(w http.ResponseWriter, r *http.Request, display Display,
	enc encoders.Service, logger *slog.Logger, x, y, width, height int) {

	// width/height zero means the rest of the screen
	if width == 0 || height == 0 {
		geom, err := display.Geometry()
		if err != nil {
			handleError(w, logger, err)
			return
		}
		if width == 0 {
			width = geom.Width - x
		}
		if height == 0 {
			height = geom.Height - y
		}
	}

	codec := encoders.PNGCodec
	if name := r.URL.Query().Get("format"); name != "" {
		var err error
		codec, err = encoders.CodecFromName(name)
		if err != nil {
			logger.Error("bad capture request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	encoder, err := enc.NewEncoder(codec)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	pixels, err := display.Capture(x, y, width, height)
	if err != nil {
		handleError(w, logger, err)
		return
	}
	frame := xgrab.ToRGBA(pixels, width, height)

	if raw := r.URL.Query().Get("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 || scale > 1 {
			logger.Error("bad capture request", "scale", raw)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if scale != 1 {
			target := image.Pt(int(float64(width)*scale), int(float64(height)*scale))
			frame = encoders.ScaleImage(frame, target)
		}
	}

	w.Header().Set("Content-Type", encoder.ContentType())
	if err := encoder.Encode(w, frame); err != nil {
		logger.Error("encoding response failed", "error", err)
	}
}
