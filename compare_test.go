package pagesim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CompareKeepsRequestOrder(t *testing.T) {
	reports, err := Compare(TraceOf(classicTrace...), 3, Optimal, FIFO, LRU)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, Optimal, reports[0].Policy)
	assert.Equal(t, 9, reports[0].Faults)
	assert.Equal(t, FIFO, reports[1].Policy)
	assert.Equal(t, 15, reports[1].Faults)
	assert.Equal(t, LRU, reports[2].Policy)
	assert.Equal(t, 12, reports[2].Faults)

	ids := map[string]bool{}
	for _, r := range reports {
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

func Test_CompareDefaultsToAllKinds(t *testing.T) {
	reports, err := Compare(TraceOf(beladyTrace...), 4)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, []int{10, 8, 6}, []int{reports[0].Faults, reports[1].Faults, reports[2].Faults})
}

func Test_CompareMatchesRun(t *testing.T) {
	trace := TraceOf(classicTrace...)
	reports, err := Compare(trace, 2)
	require.NoError(t, err)
	for _, r := range reports {
		alone := mustRun(t, trace, 2, r.Policy)
		assert.Equal(t, alone.Steps, r.Steps)
	}
}

func Test_CompareRejectsBadCapacity(t *testing.T) {
	_, err := Compare(TraceOf(1, 2), 0)
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}

func Test_SweepFindsBeladyAnomaly(t *testing.T) {
	res, err := Sweep(TraceOf(beladyTrace...), []int{5, 1, 3, 2, 4, 3}, nil, SweepOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Capacities())
	assert.Equal(t, Kinds(), res.Kinds())

	faults, ok := res.Faults(FIFO, 3)
	assert.True(t, ok)
	assert.Equal(t, 9, faults)
	faults, ok = res.Faults(FIFO, 4)
	assert.True(t, ok)
	assert.Equal(t, 10, faults)

	_, ok = res.Faults(FIFO, 6)
	assert.False(t, ok)

	anomalies := res.Anomalies(FIFO)
	require.Len(t, anomalies, 1)
	assert.Equal(t, Anomaly{Kind: FIFO, Capacity: 3, Faults: 9, NextCapacity: 4, NextFaults: 10}, anomalies[0])
	assert.Equal(t, "FIFO: 3 frames -> 9 faults, 4 frames -> 10 faults", anomalies[0].String())

	// stack algorithms never show the anomaly
	assert.Empty(t, res.Anomalies(LRU))
	assert.Empty(t, res.Anomalies(Optimal))
}

func Test_SweepSingleWorkerMatchesParallel(t *testing.T) {
	trace := TraceOf(classicTrace...)
	caps := []int{1, 2, 3, 4, 5, 6}
	serial, err := Sweep(trace, caps, nil, SweepOptions{Workers: 1})
	require.NoError(t, err)
	parallel, err := Sweep(trace, caps, nil, SweepOptions{Workers: 8})
	require.NoError(t, err)

	for _, k := range Kinds() {
		for _, c := range caps {
			a, _ := serial.Faults(k, c)
			b, _ := parallel.Faults(k, c)
			assert.Equal(t, a, b, "%v at %d", k, c)
		}
	}
}

func Test_SweepRejectsBadCapacity(t *testing.T) {
	_, err := Sweep(TraceOf(1, 2), []int{2, 0}, []Kind{LRU}, SweepOptions{})
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}

func Test_SweepEmpty(t *testing.T) {
	res, err := Sweep(TraceOf(1, 2), nil, []Kind{FIFO}, SweepOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Capacities())
	assert.Empty(t, res.Anomalies(FIFO))
}

func Test_SweepCollapsesRepeatedKinds(t *testing.T) {
	res, err := Sweep(TraceOf(beladyTrace...), []int{3, 4}, []Kind{LRU, FIFO, LRU, FIFO}, SweepOptions{})
	require.NoError(t, err)
	assert.Equal(t, []Kind{LRU, FIFO}, res.Kinds())

	faults, ok := res.Faults(FIFO, 4)
	assert.True(t, ok)
	assert.Equal(t, 10, faults)
	assert.Len(t, res.Anomalies(FIFO), 1)
}
