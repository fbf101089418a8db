package testutil

import (
	"testing"

	"github.com/jugglefest/jugglefest/fest"
)

// Assignment maps circuit name → juggler names in member order.
// Handy with cmp.Diff.
func Assignment(circuits *fest.Circuits) map[string][]string {
	out := make(map[string][]string, circuits.Len())
	for _, c := range circuits.All() {
		names := make([]string, len(c.Jugglers))
		for i, j := range c.Jugglers {
			names[i] = j.Name
		}
		out[c.Name] = names
	}
	return out
}

// AssertAssignmentInvariants checks the properties every successful run must have:
// equal exact fullness, every juggler placed exactly once, members sorted by
// score, recorded scores matching Score, and no blocking pair.
func AssertAssignmentInvariants(t *testing.T, jugglers []*fest.Juggler, circuits *fest.Circuits) {
	t.Helper()

	want := 0
	if circuits.Len() > 0 {
		want = len(jugglers) / circuits.Len()
	}
	seen := make(map[string]string, len(jugglers))
	total := 0
	for _, c := range circuits.All() {
		if len(c.Jugglers) != want {
			t.Errorf("circuit %s holds %d jugglers, want %d", c.Name, len(c.Jugglers), want)
		}
		total += len(c.Jugglers)
		for i, j := range c.Jugglers {
			if prev, dup := seen[j.Name]; dup {
				t.Errorf("juggler %s appears in %s and %s", j.Name, prev, c.Name)
			}
			seen[j.Name] = c.Name
			if j.Circuit != c.Name {
				t.Errorf("juggler %s sits in %s but records circuit %q", j.Name, c.Name, j.Circuit)
			}
			if s := fest.Score(j.Skills, c.Skills); s != j.Score {
				t.Errorf("juggler %s in %s records score %d, Score gives %d", j.Name, c.Name, j.Score, s)
			}
			if i > 0 && c.Jugglers[i-1].Score < j.Score {
				t.Errorf("circuit %s not sorted at %d: %d before %d", c.Name, i, c.Jugglers[i-1].Score, j.Score)
			}
		}
	}
	if total != len(jugglers) {
		t.Errorf("placed %d jugglers, want %d", total, len(jugglers))
	}
	for _, j := range jugglers {
		if _, ok := seen[j.Name]; !ok {
			t.Errorf("juggler %s was not placed", j.Name)
		}
	}
	AssertNoBlockingPair(t, jugglers, circuits)
}

// AssertNoBlockingPair checks that no juggler scores strictly higher than the
// weakest member of a circuit it listed ahead of the one it ended up in.
func AssertNoBlockingPair(t *testing.T, jugglers []*fest.Juggler, circuits *fest.Circuits) {
	t.Helper()

	for _, j := range jugglers {
		for _, name := range j.Preferences {
			if name == j.Circuit {
				break
			}
			preferred, ok := circuits.Get(name)
			if !ok || len(preferred.Jugglers) == 0 {
				continue
			}
			mine := fest.Score(j.Skills, preferred.Skills)
			weakest := preferred.Jugglers[len(preferred.Jugglers)-1]
			theirs := fest.Score(weakest.Skills, preferred.Skills)
			if mine > theirs {
				t.Errorf("juggler %s (in %s) scores %d against preferred %s, whose weakest member %s scores %d",
					j.Name, j.Circuit, mine, name, weakest.Name, theirs)
			}
		}
	}
}
