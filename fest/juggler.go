package fest

import "fmt"

// Juggler is an entity being assigned to a circuit.
//
// The preference cursor records how far through Preferences the engine has
// already looked. It is shared state: the displacement engine advances it
// as a side effect of placement, and a juggler evicted later resumes from
// where it stopped rather than from its first choice.
type Juggler struct {
	Name        string
	Skills      Skills
	Preferences []string // circuit names, most preferred first; may be empty or repeat names

	Score   int    // score against the circuit currently holding the juggler (0 if unassigned)
	Circuit string // name of the circuit currently holding the juggler ("" if unassigned)

	cursor int
}

// Evaluation pairs a preferred circuit with the juggler's score against it.
type Evaluation struct {
	Circuit string
	Score   int
}

// NewJuggler creates an unassigned juggler.
func NewJuggler(name string, skills Skills, preferences []string) *Juggler {
	return &Juggler{Name: name, Skills: skills, Preferences: preferences}
}

// Cursor returns the number of preference entries already examined.
func (j *Juggler) Cursor() int {
	return j.cursor
}

// ResetCursor rewinds the preference cursor to the first entry.
func (j *Juggler) ResetCursor() {
	j.cursor = 0
}

// nextPreference returns the preference under the cursor and advances it.
func (j *Juggler) nextPreference() (string, bool) {
	if j.cursor >= len(j.Preferences) {
		return "", false
	}
	name := j.Preferences[j.cursor]
	j.cursor++
	return name, true
}

// Evaluations scores the juggler against every entry of its preference list,
// in list order. Entries naming a circuit missing from circuits are skipped.
// The cursor is not touched.
func (j *Juggler) Evaluations(circuits *Circuits) []Evaluation {
	evals := make([]Evaluation, 0, len(j.Preferences))
	for _, name := range j.Preferences {
		c, ok := circuits.Get(name)
		if !ok {
			continue
		}
		evals = append(evals, Evaluation{Circuit: name, Score: Score(j.Skills, c.Skills)})
	}
	return evals
}

// String returns a short human-readable description.
func (j *Juggler) String() string {
	return fmt.Sprintf("Juggler: (Name: %s, Circuit: %s, Score: %d, Cursor: %d/%d)", j.Name, j.Circuit, j.Score, j.cursor, len(j.Preferences))
}
