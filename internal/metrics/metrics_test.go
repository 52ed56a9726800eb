package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRoundCounters(t *testing.T) {
	startedBefore := testutil.ToFloat64(gamesStarted.WithLabelValues("test_mode"))
	eatenBefore := testutil.ToFloat64(foodEaten.WithLabelValues("test_mode"))
	overBefore := testutil.ToFloat64(gamesOver.WithLabelValues("test_mode", "wall"))

	GameStarted("test_mode")
	FoodEaten("test_mode")
	FoodEaten("test_mode")
	GameOver("test_mode", "wall", 2)

	if got := testutil.ToFloat64(gamesStarted.WithLabelValues("test_mode")) - startedBefore; got != 1 {
		t.Errorf("games started delta = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(foodEaten.WithLabelValues("test_mode")) - eatenBefore; got != 2 {
		t.Errorf("food eaten delta = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(gamesOver.WithLabelValues("test_mode", "wall")) - overBefore; got != 1 {
		t.Errorf("games over delta = %v, expected 1", got)
	}
}

func TestSessionGauge(t *testing.T) {
	before := testutil.ToFloat64(activeSessions)

	SessionOpened()
	SessionOpened()
	if got := testutil.ToFloat64(activeSessions) - before; got != 2 {
		t.Errorf("active sessions delta = %v, expected 2", got)
	}

	SessionClosed()
	SessionClosed()
	if got := testutil.ToFloat64(activeSessions); got != before {
		t.Errorf("active sessions = %v, expected %v", got, before)
	}
}

func TestServerExposesMetrics(t *testing.T) {
	GameStarted("exposed_mode")

	srv := NewServer(":0")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `snake_games_started_total{mode="exposed_mode"}`) {
		t.Error("metrics output should include the started counter")
	}
}
