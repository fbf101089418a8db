// Package fest assigns jugglers to circuits.
//
// # Reading Guide
//
// Start with these files to understand the assignment kernel:
//   - circuit.go: Circuit (capacity-bounded, score-ordered member list) and the ordered Circuits collection
//   - juggler.go: Juggler with its resumable preference cursor
//   - placement.go: the insertion/displacement engine that settles one juggler
//   - scatter.go: Scatter, which validates input, sizes circuits, and runs the fallback pass
//
// # Algorithm
//
// Every circuit receives capacity len(jugglers)/len(circuits). Jugglers are
// placed in the order given. A juggler walks its preference list from its
// cursor; a full circuit accepts it only when its score is strictly greater
// than the weakest member's, in which case the weakest member is evicted and
// continues down its own preference list. Jugglers whose lists run out are
// placed by a fallback pass over the circuits that still have room, without
// touching anyone already settled in a full circuit.
//
// The procedure is greedy and order-dependent: reordering the input can change
// the result. Identical input always yields an identical assignment.
//
// # Sub-packages
//   - fest/festfile/: the C/J text format (parse, write, random generation)
//   - fest/trace/: decision trace recording
package fest
