// Package metrics exposes Prometheus counters for played rounds and SSH
// sessions. Metrics are registered on the default registry at init.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelMode  = "mode"
	labelCause = "cause"
)

// Metric names follow snake_<name>; every round metric carries the mode label.
var (
	gamesStarted = newCounter("snake_games_started_total", "Rounds started")
	foodEaten    = newCounter("snake_food_eaten_total", "Food eaten across all rounds")

	gamesOver = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snake_games_over_total",
		Help: "Rounds ended, by collision cause",
	}, []string{labelMode, labelCause})

	finalScore = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snake_final_score",
		Help:    "Score at game over",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
	}, []string{labelMode})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snake_ssh_active_sessions",
		Help: "Connected SSH sessions",
	})
)

func newCounter(name, help string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, []string{labelMode})
}

// GameStarted records a new round.
func GameStarted(mode string) {
	gamesStarted.WithLabelValues(mode).Inc()
}

// FoodEaten records one food pickup.
func FoodEaten(mode string) {
	foodEaten.WithLabelValues(mode).Inc()
}

// GameOver records a finished round and its score.
func GameOver(mode, cause string, score int) {
	gamesOver.WithLabelValues(mode, cause).Inc()
	finalScore.WithLabelValues(mode).Observe(float64(score))
}

// SessionOpened increments the active SSH session gauge.
func SessionOpened() {
	activeSessions.Inc()
}

// SessionClosed decrements the active SSH session gauge.
func SessionClosed() {
	activeSessions.Dec()
}

// NewServer returns an HTTP server exposing /metrics on addr.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
