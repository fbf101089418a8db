// Package trace provides decision-trace recording for assignment runs.
// This package has no dependencies on fest; it stores pure data types.
package trace

// PlacementRecord captures a single insertion of a juggler into a circuit.
type PlacementRecord struct {
	Juggler  string
	Circuit  string
	Score    int
	Evicted  string // juggler displaced to make room ("" when the circuit had a free place)
	Depth    int    // hop within the displacement chain; 0 is the juggler handed to the engine
	Fallback bool   // placed by the fallback pass against the remaining-capacity circuits
}

// OverflowRecord captures a juggler whose preference list yielded no placement.
type OverflowRecord struct {
	Juggler   string
	Evaluated int // preference entries examined in total (the juggler's cursor)
	Fallback  bool
}
