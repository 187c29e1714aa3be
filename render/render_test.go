package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagesim"
)

func Test_Frames(t *testing.T) {
	assert.Equal(t, "[]", Frames(nil))
	assert.Equal(t, "[3 -1 0]", Frames([]pagesim.Page{3, -1, 0}))
}

func Test_Steps(t *testing.T) {
	r, err := pagesim.Run(pagesim.TraceOf(1, 2, 1, 3), 2, pagesim.FIFO)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Steps(&buf, r))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "FIFO, 2 frames (frames listed oldest first)", lines[0])
	assert.Equal(t, []string{"Step", "Page", "Frames", "Victim", "Fault?"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3", "1", "[1", "2]", "-", "No"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"4", "3", "[2", "3]", "1", "Yes"}, strings.Fields(lines[5]))
	assert.Equal(t, "Total page faults (FIFO): 3", lines[6])
}

func Test_Summary(t *testing.T) {
	reports, err := pagesim.Compare(pagesim.TraceOf(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, reports))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"FIFO", "3", "9", "3", "75.00%"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"LRU", "3", "10", "2", "83.33%"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Optimal", "3", "7", "5", "58.33%"}, strings.Fields(lines[3]))
}

func Test_SweepMarksAnomaly(t *testing.T) {
	res, err := pagesim.Sweep(pagesim.TraceOf(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5),
		[]int{3, 4}, []pagesim.Kind{pagesim.FIFO, pagesim.LRU}, pagesim.SweepOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Sweep(&buf, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"Policy", "3", "4"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"FIFO", "9", "10*"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"LRU", "10", "8"}, strings.Fields(lines[2]))
	assert.Equal(t, "Belady's anomaly: FIFO: 3 frames -> 9 faults, 4 frames -> 10 faults", lines[3])
}

func Test_SweepPrintsEachPolicyOnce(t *testing.T) {
	res, err := pagesim.Sweep(pagesim.TraceOf(1, 2, 3, 1), []int{2},
		[]pagesim.Kind{pagesim.LRU, pagesim.LRU}, pagesim.SweepOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Sweep(&buf, res))
	assert.Equal(t, 1, strings.Count(buf.String(), "LRU"))
}
