package festfile

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jugglefest/jugglefest/fest"
)

// GenerateConfig describes a random fest.
type GenerateConfig struct {
	Seed        int64
	Circuits    int
	Jugglers    int
	Preferences int // preferred circuits per juggler, capped at Circuits
	MaxSkill    int // skills are drawn uniformly from [1, MaxSkill]
	Dimensions  int // skill vector length; 0 means len(SkillLabels)
}

// Validate checks that the configuration describes a fest that can be generated.
func (c GenerateConfig) Validate() error {
	if c.Circuits <= 0 {
		return fmt.Errorf("circuits must be positive, got %d", c.Circuits)
	}
	if c.Jugglers < 0 {
		return fmt.Errorf("jugglers must be non-negative, got %d", c.Jugglers)
	}
	if c.Preferences < 0 {
		return fmt.Errorf("preferences must be non-negative, got %d", c.Preferences)
	}
	if c.MaxSkill < 1 {
		return fmt.Errorf("max skill must be at least 1, got %d", c.MaxSkill)
	}
	if c.Dimensions < 0 {
		return fmt.Errorf("dimensions must be non-negative, got %d", c.Dimensions)
	}
	return nil
}

// Generate builds a random fest. Deterministic given the same config.
// Circuits are named C0.., jugglers J0..; each juggler lists distinct circuits.
func Generate(cfg GenerateConfig) (*Fest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	if cfg.Jugglers%cfg.Circuits != 0 {
		logrus.Warnf("%d jugglers cannot be split evenly over %d circuits; the fest will not scatter", cfg.Jugglers, cfg.Circuits)
	}
	dims := cfg.Dimensions
	if dims == 0 {
		dims = len(SkillLabels)
	}
	prefs := cfg.Preferences
	if prefs > cfg.Circuits {
		prefs = cfg.Circuits
	}

	rng := fest.NewPartitionedRNG(fest.NewGenerationKey(cfg.Seed))
	circuitRNG := rng.ForSubsystem(fest.SubsystemCircuits)
	jugglerRNG := rng.ForSubsystem(fest.SubsystemJugglers)
	prefRNG := rng.ForSubsystem(fest.SubsystemPreferences)

	randomSkills := func(draw func(int) int) fest.Skills {
		skills := make(fest.Skills, dims)
		for i := range skills {
			skills[i] = 1 + draw(cfg.MaxSkill)
		}
		return skills
	}

	circuits, _ := fest.NewCircuits()
	names := make([]string, cfg.Circuits)
	for i := 0; i < cfg.Circuits; i++ {
		names[i] = fmt.Sprintf("%s%d", circuitTag, i)
		if err := circuits.Add(fest.NewCircuit(names[i], randomSkills(circuitRNG.Intn))); err != nil {
			return nil, err
		}
	}

	jugglers := make([]*fest.Juggler, cfg.Jugglers)
	for i := range jugglers {
		preferences := make([]string, prefs)
		for k, idx := range prefRNG.Perm(cfg.Circuits)[:prefs] {
			preferences[k] = names[idx]
		}
		jugglers[i] = fest.NewJuggler(fmt.Sprintf("%s%d", jugglerTag, i), randomSkills(jugglerRNG.Intn), preferences)
	}

	return &Fest{Circuits: circuits, Jugglers: jugglers}, nil
}
