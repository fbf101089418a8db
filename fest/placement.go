package fest

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jugglefest/jugglefest/fest/trace"
)

// placer runs the insertion/displacement engine against one circuit collection.
// It is not safe for concurrent use; only one displacement chain is ever active.
type placer struct {
	circuits *Circuits
	trace    *trace.AssignmentTrace
	log      *logrus.Entry
	maxHops  int  // upper bound on placements within one chain
	fallback bool // true when running over the shadow circuits of the fallback pass
}

// newPlacer bounds chains by the total number of preference entries: every
// hop after the first places an evicted juggler, which consumes at least one
// position of its cursor, and cursors never move backwards.
func newPlacer(circuits *Circuits, jugglers []*Juggler, at *trace.AssignmentTrace, log *logrus.Entry, fallback bool) *placer {
	hops := 1
	for _, j := range jugglers {
		hops += len(j.Preferences)
	}
	return &placer{circuits: circuits, trace: at, log: log, maxHops: hops, fallback: fallback}
}

// place settles j, evicting and re-placing displaced jugglers as needed.
// Returns nil when the whole chain settled, or the juggler left without a
// place at the end of the chain.
func (p *placer) place(j *Juggler) (*Juggler, error) {
	for depth := 0; ; depth++ {
		if depth >= p.maxHops {
			return nil, fmt.Errorf("placing %s after %d hops: %w", j.Name, depth, ErrChainTooLong)
		}
		evicted, placed, err := p.settle(j, depth)
		if err != nil {
			return nil, err
		}
		if !placed {
			p.log.Debugf("%s exhausted its preferences after %d entries", j.Name, j.Cursor())
			if p.trace.Enabled() {
				p.trace.RecordOverflow(trace.OverflowRecord{Juggler: j.Name, Evaluated: j.Cursor(), Fallback: p.fallback})
			}
			return j, nil
		}
		if evicted == nil {
			return nil, nil
		}
		j = evicted
	}
}

// settle walks j's preferences from its cursor and inserts it into the first
// circuit that has room or whose weakest member scores strictly lower.
// The weakest member of a full circuit is evicted and returned.
func (p *placer) settle(j *Juggler, depth int) (evicted *Juggler, placed bool, err error) {
	for {
		name, ok := j.nextPreference()
		if !ok {
			return nil, false, nil
		}
		c, ok := p.circuits.Get(name)
		if !ok {
			return nil, false, fmt.Errorf("%w: %s prefers unknown circuit %q", ErrValidation, j.Name, name)
		}

		score := Score(j.Skills, c.Skills)
		if c.IsFull() && (len(c.Jugglers) == 0 || score <= c.MinScore()) {
			continue
		}
		if c.IsFull() {
			evicted = c.popWeakest()
		}
		if err := c.AddWithScore(j, score); err != nil {
			return nil, false, err
		}

		if evicted != nil {
			p.log.Debugf("%s (score %d) displaced %s from %s", j.Name, score, evicted.Name, c.Name)
		} else {
			p.log.Debugf("%s placed in %s (score %d)", j.Name, c.Name, score)
		}
		if p.trace.Enabled() {
			record := trace.PlacementRecord{Juggler: j.Name, Circuit: c.Name, Score: score, Depth: depth, Fallback: p.fallback}
			if evicted != nil {
				record.Evicted = evicted.Name
			}
			p.trace.RecordPlacement(record)
		}
		return evicted, true, nil
	}
}
