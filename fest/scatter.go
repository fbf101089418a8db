package fest

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jugglefest/jugglefest/fest/trace"
)

// Option configures a Scatter run.
type Option func(*options)

type options struct {
	trace *trace.AssignmentTrace
}

// WithTrace records every placement, eviction and overflow into at.
func WithTrace(at *trace.AssignmentTrace) Option {
	return func(o *options) { o.trace = at }
}

// Scatter assigns every juggler to exactly one circuit so that all circuits
// end up holding len(jugglers)/circuits.Len() jugglers.
//
// Jugglers are processed in slice order; the order is part of the contract.
// Input is validated before anything is mutated. Any error aborts the run and
// the partially filled circuits must be discarded.
func Scatter(jugglers []*Juggler, circuits *Circuits, opts ...Option) error {
	if err := validate(jugglers, circuits); err != nil {
		return err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := logrus.WithField("run", runID(o.trace))
	size := len(jugglers) / circuits.Len()
	for _, c := range circuits.All() {
		c.Capacity = size
	}
	log.Debugf("scattering %d jugglers into %d circuits of %d", len(jugglers), circuits.Len(), size)

	p := newPlacer(circuits, jugglers, o.trace, log, false)
	overflow, err := p.placeAll(jugglers)
	if err != nil {
		return err
	}
	if len(overflow) == 0 {
		return nil
	}

	log.Infof("%d jugglers exhausted their preferences, scattering them to remaining circuits", len(overflow))
	return scatterRemaining(overflow, circuits, o.trace, log)
}

// placeAll runs the engine for each juggler in order and returns the jugglers
// left unplaced. A juggler is reported at most once.
func (p *placer) placeAll(jugglers []*Juggler) ([]*Juggler, error) {
	var overflow []*Juggler
	seen := make(map[*Juggler]bool)
	for _, j := range jugglers {
		left, err := p.place(j)
		if err != nil {
			return nil, err
		}
		if left != nil && !seen[left] {
			seen[left] = true
			overflow = append(overflow, left)
		}
	}
	return overflow, nil
}

// scatterRemaining places jugglers whose preferences offered no place.
//
// It works on shadow copies: one circuit per non-full circuit with capacity
// equal to its free places, and one juggler per overflow juggler preferring
// every shadow circuit in enumeration order. Full circuits never appear in the
// shadow set, so jugglers settled there cannot be evicted. Results are copied
// back with the scores computed on the shadows.
func scatterRemaining(overflow []*Juggler, circuits *Circuits, at *trace.AssignmentTrace, log *logrus.Entry) error {
	shadowCircuits, err := NewCircuits()
	if err != nil {
		return err
	}
	for _, c := range circuits.All() {
		if c.IsFull() {
			continue
		}
		shadow := NewCircuit(c.Name, c.Skills)
		shadow.Capacity = c.FreePlaces()
		if err := shadowCircuits.Add(shadow); err != nil {
			return err
		}
	}

	names := shadowCircuits.Names()
	shadowJugglers := make([]*Juggler, len(overflow))
	originals := make(map[string]*Juggler, len(overflow))
	for i, j := range overflow {
		shadowJugglers[i] = NewJuggler(j.Name, j.Skills, names)
		originals[j.Name] = j
	}

	p := newPlacer(shadowCircuits, shadowJugglers, at, log, true)
	for _, sj := range shadowJugglers {
		left, err := p.place(sj)
		if err != nil {
			return err
		}
		if left != nil {
			return fmt.Errorf("placing %s among %d remaining circuits: %w", left.Name, shadowCircuits.Len(), ErrScattering)
		}
	}

	for _, shadow := range shadowCircuits.All() {
		target, _ := circuits.Get(shadow.Name)
		for _, sj := range shadow.Jugglers {
			if err := target.AddWithScore(originals[sj.Name], sj.Score); err != nil {
				return err
			}
		}
	}
	return nil
}

// validate rejects input that cannot be scattered, before anything is mutated.
func validate(jugglers []*Juggler, circuits *Circuits) error {
	if circuits.Len() == 0 {
		return ErrNoCircuits
	}
	if len(jugglers)%circuits.Len() != 0 {
		return fmt.Errorf("%d jugglers, %d circuits: %w", len(jugglers), circuits.Len(), ErrNotDivisible)
	}

	width := len(circuits.All()[0].Skills)
	for _, c := range circuits.All() {
		if len(c.Skills) != width {
			return fmt.Errorf("%w: circuit %s has %d skills, expected %d", ErrValidation, c.Name, len(c.Skills), width)
		}
	}

	seen := make(map[string]bool, len(jugglers))
	noPreferences, repeated := 0, 0
	for _, j := range jugglers {
		if j == nil {
			return fmt.Errorf("%w: nil juggler", ErrValidation)
		}
		if seen[j.Name] {
			return fmt.Errorf("%w: duplicate juggler %q", ErrValidation, j.Name)
		}
		seen[j.Name] = true
		if len(j.Skills) != width {
			return fmt.Errorf("%w: juggler %s has %d skills, expected %d", ErrValidation, j.Name, len(j.Skills), width)
		}
		listed := make(map[string]bool, len(j.Preferences))
		for _, name := range j.Preferences {
			if _, ok := circuits.Get(name); !ok {
				return fmt.Errorf("%w: juggler %s prefers unknown circuit %q", ErrValidation, j.Name, name)
			}
			if listed[name] {
				repeated++
			}
			listed[name] = true
		}
		if len(j.Preferences) == 0 {
			noPreferences++
		}
	}
	if noPreferences > 0 {
		logrus.Warnf("%d jugglers have no preferred circuits and will be placed by the fallback pass", noPreferences)
	}
	if repeated > 0 {
		logrus.Warnf("%d preference entries repeat a circuit already listed by the same juggler", repeated)
	}
	return nil
}

func runID(at *trace.AssignmentTrace) string {
	if at == nil {
		return "-"
	}
	return at.RunID
}
