package trace

import "github.com/google/uuid"

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every placement, eviction and overflow.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// AssignmentTrace collects decision records during one assignment run.
type AssignmentTrace struct {
	RunID      string
	Config     TraceConfig
	Placements []PlacementRecord
	Overflows  []OverflowRecord
}

// NewAssignmentTrace creates an AssignmentTrace ready for recording.
// Each trace gets a short random RunID so log lines from one run can be grepped together.
func NewAssignmentTrace(config TraceConfig) *AssignmentTrace {
	return &AssignmentTrace{
		RunID:      uuid.New().String()[:8],
		Config:     config,
		Placements: make([]PlacementRecord, 0),
		Overflows:  make([]OverflowRecord, 0),
	}
}

// Enabled reports whether records should be collected.
// Safe on a nil trace.
func (at *AssignmentTrace) Enabled() bool {
	return at != nil && at.Config.Level == TraceLevelDecisions
}

// RecordPlacement appends a placement record.
func (at *AssignmentTrace) RecordPlacement(record PlacementRecord) {
	at.Placements = append(at.Placements, record)
}

// RecordOverflow appends an overflow record.
func (at *AssignmentTrace) RecordOverflow(record OverflowRecord) {
	at.Overflows = append(at.Overflows, record)
}
