// Package render prints simulation results as fixed-width text tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"pagesim"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Frames formats a resident set as [a b c].
func Frames(pages []pagesim.Page) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(int(p))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func order(k pagesim.Kind) string {
	switch k {
	case pagesim.FIFO:
		return "oldest first"
	case pagesim.LRU:
		return "MRU to LRU"
	}
	return "ascending"
}

// Steps writes one row per reference followed by the fault total.
func Steps(w io.Writer, r *pagesim.Report) error {
	fmt.Fprintf(w, "%v, %d frames (frames listed %s)\n", r.Policy, r.Capacity, order(r.Policy))
	tw := newTable(w)
	fmt.Fprintln(tw, "Step\tPage\tFrames\tVictim\tFault?\t")
	for _, s := range r.Steps {
		victim := "-"
		if s.Evicted {
			victim = strconv.Itoa(int(s.Victim))
		}
		fault := "No"
		if s.Fault() {
			fault = "Yes"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t\n", s.Step, s.Page, Frames(s.Resident), victim, fault)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total page faults (%v): %d\n", r.Policy, r.Faults)
	return err
}

// Summary writes one row per report.
func Summary(w io.Writer, reports []*pagesim.Report) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Policy\tFrames\tFaults\tHits\tFault rate\t")
	for _, r := range reports {
		fmt.Fprintf(tw, "%v\t%d\t%d\t%d\t%.2f%%\t\n", r.Policy, r.Capacity, r.Faults, r.Hits, 100*r.FaultRate())
	}
	return tw.Flush()
}

// Sweep writes fault totals with one row per policy and one column per
// capacity. A total marked with * is higher than the one to its left.
func Sweep(w io.Writer, res *pagesim.SweepResult) error {
	caps := res.Capacities()
	tw := newTable(w)

	fmt.Fprint(tw, "Policy\t")
	for _, c := range caps {
		fmt.Fprintf(tw, "%d\t", c)
	}
	fmt.Fprintln(tw)

	for _, k := range res.Kinds() {
		marked := map[int]bool{}
		for _, a := range res.Anomalies(k) {
			marked[a.NextCapacity] = true
		}
		fmt.Fprintf(tw, "%v\t", k)
		for _, c := range caps {
			f, _ := res.Faults(k, c)
			if marked[c] {
				fmt.Fprintf(tw, "%d*\t", f)
			} else {
				fmt.Fprintf(tw, "%d\t", f)
			}
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, k := range res.Kinds() {
		for _, a := range res.Anomalies(k) {
			if _, err := fmt.Fprintf(w, "Belady's anomaly: %v\n", a); err != nil {
				return err
			}
		}
	}
	return nil
}
