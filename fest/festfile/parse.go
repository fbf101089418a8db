package festfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/jugglefest/jugglefest/fest"
)

const (
	circuitTag = "C"
	jugglerTag = "J"

	skillSeparator      = ":"
	preferenceSeparator = ","
)

var (
	ErrLineBeginning        = errors.New("line has to begin with 'C' or 'J'")
	ErrCircuitBeforeJuggler = errors.New("circuits have to be located before jugglers")
	ErrDuplicateCircuit     = errors.New("duplicate circuit")
	ErrDuplicateJuggler     = errors.New("duplicate juggler")
	ErrMalformedSkill       = errors.New("malformed skill rating")
	ErrMissingName          = errors.New("missing name")
)

// Fest is the parsed content of an input file.
type Fest struct {
	Circuits *fest.Circuits
	Jugglers []*fest.Juggler // in file order, which is the processing order
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Fest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fest file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parsed, nil
}

// Parse reads circuits and jugglers from r.
// Every malformed line is reported; the returned error combines them all.
func Parse(r io.Reader) (*Fest, error) {
	circuits, _ := fest.NewCircuits()
	parsed := &Fest{Circuits: circuits}
	jugglersSeen := make(map[string]bool)

	var errs error
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		data := strings.Fields(scanner.Text())
		if len(data) == 0 {
			continue
		}

		switch data[0] {
		case circuitTag:
			c, err := parseCircuit(data[1:])
			switch {
			case err != nil:
			case len(jugglersSeen) > 0:
				err = ErrCircuitBeforeJuggler
			case hasCircuit(circuits, c.Name):
				err = fmt.Errorf("%w: %q", ErrDuplicateCircuit, c.Name)
			default:
				err = circuits.Add(c)
			}
			errs = multierr.Append(errs, lineErr(lineNo, err))
		case jugglerTag:
			j, err := parseJuggler(data[1:])
			switch {
			case err != nil:
			case circuits.Len() == 0:
				err = ErrCircuitBeforeJuggler
			case jugglersSeen[j.Name]:
				err = fmt.Errorf("%w: %q", ErrDuplicateJuggler, j.Name)
			default:
				parsed.Jugglers = append(parsed.Jugglers, j)
			}
			if j != nil {
				jugglersSeen[j.Name] = true
			}
			errs = multierr.Append(errs, lineErr(lineNo, err))
		default:
			errs = multierr.Append(errs, lineErr(lineNo, ErrLineBeginning))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("reading input: %w", err))
	}
	if errs != nil {
		return nil, errs
	}
	return parsed, nil
}

func parseCircuit(tokens []string) (*fest.Circuit, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("circuit: %w", ErrMissingName)
	}
	skills, err := parseSkills(tokens[1:])
	if err != nil {
		return nil, err
	}
	return fest.NewCircuit(tokens[0], skills), nil
}

func parseJuggler(tokens []string) (*fest.Juggler, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("juggler: %w", ErrMissingName)
	}
	name, rest := tokens[0], tokens[1:]

	preferences := []string{}
	if n := len(rest); n > 0 && !strings.Contains(rest[n-1], skillSeparator) {
		preferences = strings.Split(rest[n-1], preferenceSeparator)
		rest = rest[:n-1]
	}
	skills, err := parseSkills(rest)
	if err != nil {
		return nil, err
	}
	return fest.NewJuggler(name, skills, preferences), nil
}

// parseSkills converts tokens such as "H:3" into a skill vector.
func parseSkills(tokens []string) (fest.Skills, error) {
	skills := make(fest.Skills, 0, len(tokens))
	for _, tok := range tokens {
		_, value, found := strings.Cut(tok, skillSeparator)
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSkill, tok)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSkill, tok)
		}
		skills = append(skills, v)
	}
	return skills, nil
}

func hasCircuit(circuits *fest.Circuits, name string) bool {
	_, ok := circuits.Get(name)
	return ok
}

func lineErr(lineNo int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("line %d: %w", lineNo, err)
}
