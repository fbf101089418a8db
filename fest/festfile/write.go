package festfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jugglefest/jugglefest/fest"
)

// SkillLabels names the first skill dimensions in written input files.
// Further dimensions are written as S3, S4, ...
var SkillLabels = []string{"H", "E", "P"}

// WriteAssignmentsFile writes the assignment report to path.
func WriteAssignmentsFile(path string, circuits *fest.Circuits) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteAssignments(f, circuits); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteAssignments writes one line per circuit, highest circuit number first.
// Each juggler is followed by its score against every circuit it listed.
// No newline follows the last line.
func WriteAssignments(w io.Writer, circuits *fest.Circuits) error {
	bw := bufio.NewWriter(w)
	for i, c := range SortDescending(circuits.All()) {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(FormatAssignment(c, circuits))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing assignments: %w", err)
	}
	return nil
}

// FormatAssignment renders one output line for c.
func FormatAssignment(c *fest.Circuit, circuits *fest.Circuits) string {
	jugglers := make([]string, len(c.Jugglers))
	for i, j := range c.Jugglers {
		ratings := make([]string, 0, len(j.Preferences))
		for _, e := range j.Evaluations(circuits) {
			ratings = append(ratings, fmt.Sprintf("%s%s%d", e.Circuit, skillSeparator, e.Score))
		}
		jugglers[i] = j.Name + " " + strings.Join(ratings, " ")
	}
	return c.Name + " " + strings.Join(jugglers, ", ")
}

// SortDescending returns circuits ordered by the number in their names,
// highest first. Names without a number sort after numbered ones, in
// descending lexical order.
func SortDescending(circuits []*fest.Circuit) []*fest.Circuit {
	sorted := make([]*fest.Circuit, len(circuits))
	copy(sorted, circuits)
	sort.SliceStable(sorted, func(a, b int) bool {
		na, okA := fest.NameNumber(sorted[a].Name)
		nb, okB := fest.NameNumber(sorted[b].Name)
		switch {
		case okA && okB && na != nb:
			return na > nb
		case okA != okB:
			return okA
		default:
			return sorted[a].Name > sorted[b].Name
		}
	})
	return sorted
}

// WriteFest writes circuits and jugglers in the input format.
func WriteFest(w io.Writer, circuits *fest.Circuits, jugglers []*fest.Juggler) error {
	bw := bufio.NewWriter(w)
	for _, c := range circuits.All() {
		fmt.Fprintf(bw, "%s %s %s\n", circuitTag, c.Name, formatSkills(c.Skills))
	}
	bw.WriteString("\n")
	for _, j := range jugglers {
		line := fmt.Sprintf("%s %s %s", jugglerTag, j.Name, formatSkills(j.Skills))
		if len(j.Preferences) > 0 {
			line += " " + strings.Join(j.Preferences, preferenceSeparator)
		}
		bw.WriteString(line + "\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing fest: %w", err)
	}
	return nil
}

func formatSkills(skills fest.Skills) string {
	parts := make([]string, len(skills))
	for i, v := range skills {
		label := fmt.Sprintf("S%d", i)
		if i < len(SkillLabels) {
			label = SkillLabels[i]
		}
		parts[i] = fmt.Sprintf("%s%s%d", label, skillSeparator, v)
	}
	return strings.Join(parts, " ")
}
