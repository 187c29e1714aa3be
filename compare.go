package pagesim

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
)

// Compare runs the trace once per kind at the same capacity. Reports
// come back in the order the kinds were given. Each run gets its own
// policy and runs on its own goroutine.
func Compare(trace Trace, capacity int, kinds ...Kind) ([]*Report, error) {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	jobs := make([]job, 0, len(kinds))
	for _, k := range kinds {
		jobs = append(jobs, job{kind: k, capacity: capacity})
	}
	return runJobs(trace, jobs, 0)
}

// SweepOptions tunes Sweep.
type SweepOptions struct {
	// Workers bounds the number of simulations in flight. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Anomaly is a pair of capacities where adding frames added faults.
type Anomaly struct {
	Kind         Kind
	Capacity     int
	Faults       int
	NextCapacity int
	NextFaults   int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%v: %d frames -> %d faults, %d frames -> %d faults",
		a.Kind, a.Capacity, a.Faults, a.NextCapacity, a.NextFaults)
}

type sweepKey struct {
	kind     Kind
	capacity int
}

// SweepResult holds fault totals for every (kind, capacity) pair.
type SweepResult struct {
	capacities []int
	kinds      []Kind
	faults     map[sweepKey]int
}

// Capacities returns the swept capacities in ascending order.
func (r *SweepResult) Capacities() []int { return slices.Clone(r.capacities) }

// Kinds returns the swept policies in the order requested.
func (r *SweepResult) Kinds() []Kind { return slices.Clone(r.kinds) }

// Faults returns the fault total for kind at capacity. ok is false when
// the pair was not part of the sweep.
func (r *SweepResult) Faults(kind Kind, capacity int) (faults int, ok bool) {
	faults, ok = r.faults[sweepKey{kind, capacity}]
	return faults, ok
}

// Anomalies lists every adjacent pair of swept capacities where kind
// faulted more with the larger one.
func (r *SweepResult) Anomalies(kind Kind) []Anomaly {
	var ret []Anomaly
	for i := 0; i+1 < len(r.capacities); i++ {
		c, next := r.capacities[i], r.capacities[i+1]
		f, ok := r.faults[sweepKey{kind, c}]
		if !ok {
			continue
		}
		nf, ok := r.faults[sweepKey{kind, next}]
		if !ok {
			continue
		}
		if nf > f {
			ret = append(ret, Anomaly{
				Kind:         kind,
				Capacity:     c,
				Faults:       f,
				NextCapacity: next,
				NextFaults:   nf,
			})
		}
	}
	return ret
}

// Sweep runs every kind at every capacity. Duplicate capacities and
// kinds are collapsed; an invalid capacity fails the whole sweep before anything
// runs.
func Sweep(trace Trace, capacities []int, kinds []Kind, opts SweepOptions) (*SweepResult, error) {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	kinds = uniqueKinds(kinds)
	caps := slices.Clone(capacities)
	slices.Sort(caps)
	caps = slices.Compact(caps)

	jobs := make([]job, 0, len(caps)*len(kinds))
	for _, k := range kinds {
		for _, c := range caps {
			jobs = append(jobs, job{kind: k, capacity: c})
		}
	}
	reports, err := runJobs(trace, jobs, opts.Workers)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{
		capacities: caps,
		kinds:      kinds,
		faults:     make(map[sweepKey]int, len(reports)),
	}
	for _, r := range reports {
		res.faults[sweepKey{r.Policy, r.Capacity}] = r.Faults
	}
	return res, nil
}

// uniqueKinds drops repeated kinds, keeping first occurrences in order.
func uniqueKinds(kinds []Kind) []Kind {
	seen := make(map[Kind]bool, len(kinds))
	ret := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			ret = append(ret, k)
		}
	}
	return ret
}

type job struct {
	kind     Kind
	capacity int
}

// runJobs validates every job up front, then runs them on at most
// workers goroutines. reports[i] belongs to jobs[i].
func runJobs(trace Trace, jobs []job, workers int) ([]*Report, error) {
	sims := make([]*Simulation, len(jobs))
	for i, j := range jobs {
		sim, err := NewSimulation(trace, j.capacity, j.kind)
		if err != nil {
			return nil, err
		}
		sims[i] = sim
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sims) {
		workers = len(sims)
	}

	reports := make([]*Report, len(sims))
	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				sim := sims[i]
				for {
					if _, ok := sim.Step(); !ok {
						break
					}
				}
				reports[i] = &sim.report
				slog.Debug("simulation finished",
					"id", sim.report.ID,
					"policy", sim.report.Policy,
					"capacity", sim.report.Capacity,
					"faults", sim.report.Faults)
			}
		}()
	}
	for i := range sims {
		next <- i
	}
	close(next)
	wg.Wait()
	return reports, nil
}
