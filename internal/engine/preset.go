package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DifficultyPreset tunes the built-in search. Depth is the nominal alpha-beta
// depth in plies; RandomMoveProb is the chance a turn is answered with a
// uniformly random legal move instead of a searched one; EvalNoise is added
// (plus or minus) to leaf evaluations in centipawns.
type DifficultyPreset struct {
	Name           string
	Depth          int
	RandomMoveProb float64
	EvalNoise      int
}

var presetMu sync.RWMutex

var presets = map[string]DifficultyPreset{
	"level1": {Name: "level1", Depth: 2, RandomMoveProb: 0.35, EvalNoise: 60},
	"level2": {Name: "level2", Depth: 2, RandomMoveProb: 0.15, EvalNoise: 40},
	"level3": {Name: "level3", Depth: 3, RandomMoveProb: 0.05, EvalNoise: 25},
	"level4": {Name: "level4", Depth: 4, EvalNoise: 15},
	"level5": {Name: "level5", Depth: 4, EvalNoise: 5},
	"level6": {Name: "level6", Depth: 5},
	"level7": {Name: "level7", Depth: 5},
	"level8": {Name: "level8", Depth: 6},
}

func GetPreset(name string) (DifficultyPreset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	presetMu.RLock()
	p, ok := presets[key]
	presetMu.RUnlock()
	if !ok {
		return DifficultyPreset{}, fmt.Errorf("unknown difficulty preset %q", name)
	}
	return p, nil
}

// PresetForLevel maps a numeric level to its preset, clamping to the
// supported range.
func PresetForLevel(level int) DifficultyPreset {
	if level < 1 {
		level = 1
	}
	if level > len(presets) {
		level = len(presets)
	}
	p, _ := GetPreset(fmt.Sprintf("level%d", level))
	return p
}

func ValidatePreset(p DifficultyPreset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name required")
	}
	if p.Depth <= 0 {
		return fmt.Errorf("preset %s: search depth must be positive", p.Name)
	}
	if p.RandomMoveProb < 0 || p.RandomMoveProb > 1 {
		return fmt.Errorf("preset %s: random move probability out of range", p.Name)
	}
	if p.EvalNoise < 0 {
		return fmt.Errorf("preset %s: eval noise must not be negative", p.Name)
	}
	return nil
}

// PresetNames returns the known preset names in level order.
func PresetNames() []string {
	presetMu.RLock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	presetMu.RUnlock()
	sort.Strings(names)
	return names
}
