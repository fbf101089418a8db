// Package festfile reads and writes the line-oriented fest text format.
//
// Input lines describe circuits and jugglers:
//
//	C C0 H:7 E:7 P:10
//	J J0 H:3 E:9 P:2 C2,C0,C1
//
// Every circuit line must come before the first juggler line. Blank lines are
// ignored. A juggler line without a trailing preference token has an empty
// preference list.
//
// Output lines list each circuit followed by its jugglers, each juggler with
// its score against every circuit it listed:
//
//	C2 J6 C2:128 C1:31 C0:188, J3 C2:120 C0:171 C1:31
package festfile
