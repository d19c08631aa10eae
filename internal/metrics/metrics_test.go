package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/metrics"
)

func TestSessionLifecycleCounters(t *testing.T) {
	m := metrics.New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded("exit")

	expected := `
# HELP narrative_sessions_active Number of live sessions.
# TYPE narrative_sessions_active gauge
narrative_sessions_active 1
# HELP narrative_sessions_started_total Total number of sessions created.
# TYPE narrative_sessions_started_total counter
narrative_sessions_started_total 2
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"narrative_sessions_active", "narrative_sessions_started_total")
	require.NoError(t, err)

	problems, err := testutil.GatherAndLint(m.Registry(), "narrative_sessions_active")
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded("exit")
		m.LineShown()
		m.Move(metrics.MoveOK)
		m.GameOver("protagonist")
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := metrics.New()
	m.Move(metrics.MoveBlocked)
	m.GameOver("antagonist")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `narrative_moves_total{result="blocked"} 1`)
	assert.Contains(t, string(body), `narrative_game_overs_total{character="antagonist"} 1`)
}
