package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/jugglefest/jugglefest/fest"
	"github.com/jugglefest/jugglefest/fest/trace"
)

// runSummary is everything printed after a run.
type runSummary struct {
	RunID         string
	Circuits      *fest.Circuits
	Jugglers      int
	Trace         *trace.TraceSummary
	ReportCircuit string
	NameSum       *int // nil when no report circuit was asked for
	Elapsed       time.Duration
}

func writeSummary(w io.Writer, s runSummary) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "=== Assignment Summary (run %s) ===\n", s.RunID)
	fmt.Fprintf(w, "Circuits: %d  Jugglers: %d  Elapsed: %s\n",
		s.Circuits.Len(), s.Jugglers, s.Elapsed.Round(time.Microsecond))

	if s.Trace != nil {
		fmt.Fprintf(w, "Placements: %d  Evictions: %d  Max chain depth: %d\n",
			s.Trace.TotalPlacements, s.Trace.Evictions, s.Trace.MaxChainDepth)
		status := color.New(color.FgGreen)
		if s.Trace.PrimaryOverflows > 0 {
			status = color.New(color.FgYellow)
		}
		status.Fprintf(w, "Fallback: %d overflowed, %d placed\n",
			s.Trace.PrimaryOverflows, s.Trace.FallbackPlacements)
		writeBusiest(w, s.Trace.CircuitDistribution)
	}

	for _, c := range s.Circuits.All() {
		if !c.IsFull() {
			color.New(color.FgRed).Fprintf(w, "Circuit %s holds %d of %d jugglers\n",
				c.Name, len(c.Jugglers), c.Capacity)
		}
	}

	if s.NameSum != nil {
		fmt.Fprintf(w, "Name sum of %s: %s\n", s.ReportCircuit, color.GreenString("%d", *s.NameSum))
	}
}

// writeBusiest prints the circuits with the most insertions, evicted ones included.
func writeBusiest(w io.Writer, distribution map[string]int) {
	const top = 3
	if len(distribution) == 0 {
		return
	}
	names := make([]string, 0, len(distribution))
	for name := range distribution {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if distribution[names[a]] != distribution[names[b]] {
			return distribution[names[a]] > distribution[names[b]]
		}
		return names[a] < names[b]
	})
	if len(names) > top {
		names = names[:top]
	}
	fmt.Fprint(w, "Busiest circuits:")
	for _, name := range names {
		fmt.Fprintf(w, " %s(%d)", name, distribution[name])
	}
	fmt.Fprintln(w)
}
