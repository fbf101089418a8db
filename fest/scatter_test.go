package fest_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jugglefest/jugglefest/fest"
	"github.com/jugglefest/jugglefest/fest/festfile"
	"github.com/jugglefest/jugglefest/internal/testutil"
	"github.com/jugglefest/jugglefest/fest/trace"
)

func mustCircuits(t *testing.T, circuits ...*fest.Circuit) *fest.Circuits {
	t.Helper()
	cs, err := fest.NewCircuits(circuits...)
	require.NoError(t, err)
	return cs
}

// randomFest mirrors the original load test: 200 circuits, 1200 jugglers, 3 preferences each.
func randomFest(t *testing.T, seed int64) *festfile.Fest {
	t.Helper()
	f, err := festfile.Generate(festfile.GenerateConfig{
		Seed:        seed,
		Circuits:    200,
		Jugglers:    1200,
		Preferences: 3,
		MaxSkill:    10,
	})
	require.NoError(t, err)
	return f
}

func TestScatter_TwoCircuitScenario_RoomAvailable(t *testing.T) {
	// GIVEN G0=[0,0,0], G1=[1,1,1] and four jugglers processed A0..A3
	cs := mustCircuits(t, fest.NewCircuit("G0", fest.Skills{0, 0, 0}), fest.NewCircuit("G1", fest.Skills{1, 1, 1}))
	jugglers := []*fest.Juggler{
		fest.NewJuggler("A0", fest.Skills{1, 1, 1}, []string{"G0", "G1"}),
		fest.NewJuggler("A1", fest.Skills{1, 1, 1}, []string{"G1", "G0"}),
		fest.NewJuggler("A2", fest.Skills{0, 0, 0}, []string{"G0", "G1"}),
		fest.NewJuggler("A3", fest.Skills{0, 0, 0}, []string{"G1", "G0"}),
	}

	// WHEN scattered
	require.NoError(t, fest.Scatter(jugglers, cs))

	// THEN A0 and A2 share G0; G1 still had a free place for A3
	want := map[string][]string{"G0": {"A0", "A2"}, "G1": {"A1", "A3"}}
	if diff := cmp.Diff(want, testutil.Assignment(cs)); diff != "" {
		t.Errorf("assignment mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, jugglers[1].Score)
	assert.Equal(t, 0, jugglers[3].Score)
	testutil.AssertAssignmentInvariants(t, jugglers, cs)
}

func TestScatter_TieWithWeakestOverflowsToFallback(t *testing.T) {
	// GIVEN three circuits of two; G0 and G1 fill up from preferences
	cs := mustCircuits(t,
		fest.NewCircuit("G0", fest.Skills{0, 0, 0}),
		fest.NewCircuit("G1", fest.Skills{1, 1, 1}),
		fest.NewCircuit("G2", fest.Skills{2, 0, 0}),
	)
	jugglers := []*fest.Juggler{
		fest.NewJuggler("A0", fest.Skills{1, 1, 1}, []string{"G0", "G1"}),
		fest.NewJuggler("A1", fest.Skills{1, 1, 1}, []string{"G1", "G0"}),
		fest.NewJuggler("A2", fest.Skills{0, 0, 0}, []string{"G0", "G1"}),
		fest.NewJuggler("A3", fest.Skills{1, 1, 1}, []string{"G1"}),
		fest.NewJuggler("A4", fest.Skills{0, 0, 0}, []string{"G1", "G0"}),
		fest.NewJuggler("A5", fest.Skills{0, 0, 0}, nil),
	}
	at := trace.NewAssignmentTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})

	// WHEN scattered
	require.NoError(t, fest.Scatter(jugglers, cs, fest.WithTrace(at)))

	// THEN A4 ties with G0's weakest (0 vs 0), is not allowed in, and lands in G2 with A5
	want := map[string][]string{"G0": {"A0", "A2"}, "G1": {"A1", "A3"}, "G2": {"A4", "A5"}}
	if diff := cmp.Diff(want, testutil.Assignment(cs)); diff != "" {
		t.Errorf("assignment mismatch (-want +got):\n%s", diff)
	}
	summary := trace.Summarize(at)
	assert.Equal(t, 2, summary.PrimaryOverflows)
	assert.Equal(t, 2, summary.FallbackPlacements)
	assert.Equal(t, 0, summary.Evictions)
	testutil.AssertAssignmentInvariants(t, jugglers, cs)
}

func TestScatter_ProcessingOrderIsSignificant(t *testing.T) {
	build := func(order ...string) ([]*fest.Juggler, *fest.Circuits) {
		byName := map[string]*fest.Juggler{
			"J0": fest.NewJuggler("J0", fest.Skills{1}, []string{"C0", "C1"}),
			"J1": fest.NewJuggler("J1", fest.Skills{1}, []string{"C0", "C1"}),
		}
		jugglers := make([]*fest.Juggler, len(order))
		for i, name := range order {
			jugglers[i] = byName[name]
		}
		return jugglers, mustCircuits(t, fest.NewCircuit("C0", fest.Skills{1}), fest.NewCircuit("C1", fest.Skills{1}))
	}

	// GIVEN two equally strong jugglers with identical preferences
	forward, csForward := build("J0", "J1")
	backward, csBackward := build("J1", "J0")

	// WHEN scattered in opposite orders
	require.NoError(t, fest.Scatter(forward, csForward))
	require.NoError(t, fest.Scatter(backward, csBackward))

	// THEN whoever comes first keeps the first choice
	assert.Equal(t, map[string][]string{"C0": {"J0"}, "C1": {"J1"}}, testutil.Assignment(csForward))
	assert.Equal(t, map[string][]string{"C0": {"J1"}, "C1": {"J0"}}, testutil.Assignment(csBackward))
}

func TestScatter_RandomFest_Invariants(t *testing.T) {
	f := randomFest(t, 7)

	require.NoError(t, fest.Scatter(f.Jugglers, f.Circuits))

	testutil.AssertAssignmentInvariants(t, f.Jugglers, f.Circuits)
}

func TestScatter_AllPreferSameCircuit(t *testing.T) {
	f := randomFest(t, 11)
	for _, j := range f.Jugglers {
		j.Preferences = []string{"C0"}
	}

	require.NoError(t, fest.Scatter(f.Jugglers, f.Circuits))

	testutil.AssertAssignmentInvariants(t, f.Jugglers, f.Circuits)
}

func TestScatter_NoJugglerPrefersAnyCircuit(t *testing.T) {
	f := randomFest(t, 13)
	for _, j := range f.Jugglers {
		j.Preferences = []string{}
	}
	at := trace.NewAssignmentTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})

	require.NoError(t, fest.Scatter(f.Jugglers, f.Circuits, fest.WithTrace(at)))

	testutil.AssertAssignmentInvariants(t, f.Jugglers, f.Circuits)
	assert.Equal(t, len(f.Jugglers), trace.Summarize(at).PrimaryOverflows)
}

func TestScatter_Deterministic(t *testing.T) {
	// GIVEN two identical fests
	a := randomFest(t, 42)
	b := randomFest(t, 42)

	// WHEN both are scattered
	require.NoError(t, fest.Scatter(a.Jugglers, a.Circuits))
	require.NoError(t, fest.Scatter(b.Jugglers, b.Circuits))

	// THEN the assignments are identical
	if diff := cmp.Diff(testutil.Assignment(a.Circuits), testutil.Assignment(b.Circuits)); diff != "" {
		t.Errorf("same input produced different assignments (-first +second):\n%s", diff)
	}
}

func TestScatter_ZeroJugglersIsNoOp(t *testing.T) {
	cs := mustCircuits(t, fest.NewCircuit("C0", fest.Skills{1}), fest.NewCircuit("C1", fest.Skills{2}))

	require.NoError(t, fest.Scatter(nil, cs))

	for _, c := range cs.All() {
		assert.Empty(t, c.Jugglers)
		assert.Equal(t, 0, c.Capacity)
	}
}

func TestScatter_ValidationErrors(t *testing.T) {
	one := func() *fest.Circuits { return mustCircuits(t, fest.NewCircuit("C0", fest.Skills{1, 1})) }
	two := func() *fest.Circuits {
		return mustCircuits(t, fest.NewCircuit("C0", fest.Skills{1, 1}), fest.NewCircuit("C1", fest.Skills{1, 1}))
	}
	j := func(name string, prefs ...string) *fest.Juggler { return fest.NewJuggler(name, fest.Skills{1, 1}, prefs) }

	tests := []struct {
		name     string
		jugglers []*fest.Juggler
		circuits *fest.Circuits
		target   error
	}{
		{"nil circuits", []*fest.Juggler{j("J0")}, nil, fest.ErrNoCircuits},
		{"empty circuits", nil, mustCircuits(t), fest.ErrNoCircuits},
		{"five over two", []*fest.Juggler{j("J0"), j("J1"), j("J2"), j("J3"), j("J4")}, two(), fest.ErrNotDivisible},
		{"duplicate juggler", []*fest.Juggler{j("J0"), j("J0")}, one(), fest.ErrValidation},
		{"unknown circuit", []*fest.Juggler{j("J0", "C7")}, one(), fest.ErrValidation},
		{"juggler skill width", []*fest.Juggler{fest.NewJuggler("J0", fest.Skills{1}, nil)}, one(), fest.ErrValidation},
		{"circuit skill width", []*fest.Juggler{j("J0"), j("J1")}, mustCircuits(t,
			fest.NewCircuit("C0", fest.Skills{1, 1}), fest.NewCircuit("C1", fest.Skills{1, 1, 1})), fest.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fest.Scatter(tt.jugglers, tt.circuits)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.True(t, errors.Is(err, fest.ErrValidation))
			// nothing was mutated
			for _, c := range tt.circuits.All() {
				assert.Equal(t, 0, c.Capacity)
				assert.Empty(t, c.Jugglers)
			}
			for _, j := range tt.jugglers {
				assert.Equal(t, 0, j.Cursor())
			}
		})
	}
}
