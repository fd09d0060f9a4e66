package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type Handler struct {
	ring *Ring
}

func NewHandler(ring *Ring) *Handler {
	return &Handler{ring: ring}
}

type report struct {
	Count   int      `json:"count"`
	AvgMs   float64  `json:"avg_ms"`
	MaxMs   float64  `json:"max_ms"`
	Samples []Sample `json:"samples"`
}

func (h *Handler) GetRequestMetrics(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	samples := h.ring.Recent(limit)

	var total, max time.Duration
	for _, s := range samples {
		total += s.Duration
		if s.Duration > max {
			max = s.Duration
		}
	}

	avg := 0.0
	if len(samples) > 0 {
		avg = float64(total.Microseconds()) / float64(len(samples)) / 1000
	}

	config.JSON(w, http.StatusOK, report{
		Count:   len(samples),
		AvgMs:   avg,
		MaxMs:   float64(max.Microseconds()) / 1000,
		Samples: samples,
	})
}
