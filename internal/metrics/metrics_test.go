package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRecorder_CountersStartAtZero(t *testing.T) {
	r := NewRecorder()

	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(&buf))
	require.Contains(t, buf.String(), "debugblocker_configs_evaluated_total 0")
}

func TestRecorder_WriteToReflectsIncrements(t *testing.T) {
	r := NewRecorder()
	r.ConfigsEvaluated.Inc()
	r.ConfigsEvaluated.Inc()
	r.PairsScored.Add(5)

	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(&buf))

	out := buf.String()
	require.Contains(t, out, "debugblocker_configs_evaluated_total 2")
	require.Contains(t, out, "debugblocker_pairs_scored_total 5")
}

func TestRecorder_JoinDurationRecordsObservations(t *testing.T) {
	r := NewRecorder()
	r.JoinDuration.Observe(0.25)

	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(&buf))
	require.Contains(t, buf.String(), "debugblocker_join_duration_seconds")
}

func TestNewRecorder_IndependentRegistries(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()

	a.ConfigsEvaluated.Inc()

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.WriteTo(&bufA))
	require.NoError(t, b.WriteTo(&bufB))

	require.Contains(t, bufA.String(), "debugblocker_configs_evaluated_total 1")
	require.Contains(t, bufB.String(), "debugblocker_configs_evaluated_total 0")
}
