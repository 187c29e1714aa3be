package pagesim

import (
	"fmt"

	"github.com/rs/xid"
)

// StepRecord describes what happened on one reference.
type StepRecord struct {
	Step    int // 1-based
	Page    Page
	Hit     bool
	Victim  Page
	Evicted bool
	// Resident is the resident set after the step, in the policy's
	// display order.
	Resident []Page
}

// Fault reports whether the step missed.
func (s StepRecord) Fault() bool { return !s.Hit }

// Report is the outcome of running a trace through one policy.
type Report struct {
	ID        string
	Policy    Kind
	Capacity  int
	Faults    int
	Hits      int
	Evictions int
	Steps     []StepRecord
}

// References is the number of steps taken.
func (r *Report) References() int { return len(r.Steps) }

// FaultRate is faults over references, zero for an empty report.
func (r *Report) FaultRate() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return float64(r.Faults) / float64(len(r.Steps))
}

// Simulation drives one trace through one freshly built policy. It can
// be advanced a step at a time and stopped between any two steps; the
// report is consistent at every step boundary.
type Simulation struct {
	trace  Trace
	policy Policy
	next   int
	report Report
}

// NewSimulation validates the configuration and builds an empty policy.
func NewSimulation(trace Trace, capacity int, kind Kind) (*Simulation, error) {
	policy, err := New(kind, capacity, trace)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		trace:  trace,
		policy: policy,
		report: Report{
			ID:       xid.New().String(),
			Policy:   kind,
			Capacity: capacity,
			Steps:    make([]StepRecord, 0, trace.Len()),
		},
	}, nil
}

// Done reports whether every reference has been processed.
func (s *Simulation) Done() bool { return s.next >= s.trace.Len() }

// Step processes the next reference. ok is false once the trace is
// exhausted.
func (s *Simulation) Step() (rec StepRecord, ok bool) {
	if s.Done() {
		return StepRecord{}, false
	}
	page := s.trace.At(s.next)
	s.next++

	out := s.policy.Reference(page)
	if n := s.policy.Len(); n > s.report.Capacity {
		panic(fmt.Sprintf("invariant violated: %v holds %d pages with capacity %d after step %d",
			s.report.Policy, n, s.report.Capacity, s.next))
	}
	if out.Hit && out.Evicted {
		panic(fmt.Sprintf("invariant violated: %v evicted page %d on a hit at step %d",
			s.report.Policy, out.Victim, s.next))
	}

	rec = StepRecord{
		Step:     s.next,
		Page:     page,
		Hit:      out.Hit,
		Victim:   out.Victim,
		Evicted:  out.Evicted,
		Resident: s.policy.Resident(),
	}
	if out.Hit {
		s.report.Hits++
	} else {
		s.report.Faults++
	}
	if out.Evicted {
		s.report.Evictions++
	}
	s.report.Steps = append(s.report.Steps, rec)
	return rec, true
}

// Report returns the report for the steps processed so far.
func (s *Simulation) Report() *Report {
	r := s.report
	r.Steps = append([]StepRecord(nil), s.report.Steps...)
	return &r
}

// Run simulates the whole trace under the given policy.
func Run(trace Trace, capacity int, kind Kind) (*Report, error) {
	sim, err := NewSimulation(trace, capacity, kind)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := sim.Step(); !ok {
			break
		}
	}
	return &sim.report, nil
}
