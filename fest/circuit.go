package fest

import (
	"fmt"
	"strings"
)

// Circuit is a capacity-bounded group of jugglers.
// Jugglers is kept sorted by descending score against this circuit; a
// newcomer is placed after every member with an equal or higher score.
type Circuit struct {
	Name     string
	Skills   Skills
	Capacity int        // set by Scatter to len(jugglers)/len(circuits)
	Jugglers []*Juggler // len(Jugglers) <= Capacity
}

// NewCircuit creates an empty circuit with zero capacity.
func NewCircuit(name string, skills Skills) *Circuit {
	return &Circuit{Name: name, Skills: skills}
}

// IsFull returns true when no free place is left.
func (c *Circuit) IsFull() bool {
	return len(c.Jugglers) >= c.Capacity
}

// FreePlaces returns the number of jugglers the circuit can still take.
func (c *Circuit) FreePlaces() int {
	return c.Capacity - len(c.Jugglers)
}

// MinScore returns the score of the weakest member, or 0 for an empty circuit.
func (c *Circuit) MinScore() int {
	if len(c.Jugglers) == 0 {
		return 0
	}
	return c.Jugglers[len(c.Jugglers)-1].Score
}

// Add inserts j with its score computed against this circuit.
func (c *Circuit) Add(j *Juggler) error {
	return c.AddWithScore(j, Score(j.Skills, c.Skills))
}

// AddWithScore inserts j keeping members ordered by score.
// Returns an error wrapping ErrCircuitFull if the circuit has no free place;
// the displacement engine evicts before inserting, so only a misbehaving
// caller hits it.
func (c *Circuit) AddWithScore(j *Juggler, score int) error {
	if c.IsFull() {
		return fmt.Errorf("adding %s to %s (capacity %d): %w", j.Name, c.Name, c.Capacity, ErrCircuitFull)
	}
	j.Score = score
	j.Circuit = c.Name

	idx := len(c.Jugglers)
	for i, member := range c.Jugglers {
		if score > member.Score {
			idx = i
			break
		}
	}
	c.Jugglers = append(c.Jugglers, nil)
	copy(c.Jugglers[idx+1:], c.Jugglers[idx:])
	c.Jugglers[idx] = j
	return nil
}

// popWeakest removes and returns the lowest-scoring member.
func (c *Circuit) popWeakest() *Juggler {
	n := len(c.Jugglers)
	if n == 0 {
		return nil
	}
	weakest := c.Jugglers[n-1]
	c.Jugglers[n-1] = nil
	c.Jugglers = c.Jugglers[:n-1]
	weakest.Score = 0
	weakest.Circuit = ""
	return weakest
}

// String returns a short human-readable description.
func (c *Circuit) String() string {
	names := make([]string, len(c.Jugglers))
	for i, j := range c.Jugglers {
		names[i] = j.Name
	}
	return fmt.Sprintf("Circuit: (Name: %s, Capacity: %d, Jugglers: [%s])", c.Name, c.Capacity, strings.Join(names, " "))
}

// Circuits is an ordered, name-indexed collection of circuits.
// Enumeration order is insertion order; it decides the preference order
// given to jugglers in the fallback pass.
type Circuits struct {
	order  []*Circuit
	byName map[string]*Circuit
}

// NewCircuits builds a collection, rejecting duplicate names.
func NewCircuits(circuits ...*Circuit) (*Circuits, error) {
	cs := &Circuits{byName: make(map[string]*Circuit, len(circuits))}
	for _, c := range circuits {
		if err := cs.Add(c); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// Add appends a circuit.
func (cs *Circuits) Add(c *Circuit) error {
	if _, exists := cs.byName[c.Name]; exists {
		return fmt.Errorf("%w: duplicate circuit %q", ErrValidation, c.Name)
	}
	cs.order = append(cs.order, c)
	cs.byName[c.Name] = c
	return nil
}

// Get looks a circuit up by name.
func (cs *Circuits) Get(name string) (*Circuit, bool) {
	if cs == nil {
		return nil, false
	}
	c, ok := cs.byName[name]
	return c, ok
}

// All returns the circuits in enumeration order. The slice must not be modified.
func (cs *Circuits) All() []*Circuit {
	if cs == nil {
		return nil
	}
	return cs.order
}

// Names returns circuit names in enumeration order.
func (cs *Circuits) Names() []string {
	names := make([]string, 0, cs.Len())
	for _, c := range cs.All() {
		names = append(names, c.Name)
	}
	return names
}

// Len returns the number of circuits. Safe on a nil collection.
func (cs *Circuits) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.order)
}
