package trace

// TraceSummary aggregates statistics from an AssignmentTrace.
type TraceSummary struct {
	TotalPlacements     int
	Evictions           int
	FallbackPlacements  int
	PrimaryOverflows    int // jugglers handed to the fallback pass
	MaxChainDepth       int
	UniqueCircuits      int
	CircuitDistribution map[string]int // circuit name → number of insertions (evicted ones included)
}

// Summarize computes aggregate statistics from an AssignmentTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(at *AssignmentTrace) *TraceSummary {
	summary := &TraceSummary{
		CircuitDistribution: make(map[string]int),
	}
	if at == nil {
		return summary
	}

	summary.TotalPlacements = len(at.Placements)
	for _, p := range at.Placements {
		summary.CircuitDistribution[p.Circuit]++
		if p.Evicted != "" {
			summary.Evictions++
		}
		if p.Fallback {
			summary.FallbackPlacements++
		}
		if p.Depth > summary.MaxChainDepth {
			summary.MaxChainDepth = p.Depth
		}
	}
	for _, o := range at.Overflows {
		if !o.Fallback {
			summary.PrimaryOverflows++
		}
	}

	summary.UniqueCircuits = len(summary.CircuitDistribution)

	return summary
}
