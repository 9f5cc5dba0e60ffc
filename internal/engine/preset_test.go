package engine

import "testing"

func TestPresetNamesAreOrdered(t *testing.T) {
	names := PresetNames()
	if len(names) != 8 {
		t.Fatalf("preset count = %d, want 8", len(names))
	}
	if names[0] != "level1" || names[7] != "level8" {
		t.Fatalf("preset order = %v", names)
	}
}

func TestGetPreset(t *testing.T) {
	p, err := GetPreset("level1")
	if err != nil {
		t.Fatalf("GetPreset: %v", err)
	}
	if p.Depth != 2 || p.RandomMoveProb != 0.35 {
		t.Fatalf("level1 = %+v", p)
	}
	if _, err := GetPreset("grandmaster"); err == nil {
		t.Fatalf("unknown preset accepted")
	}
}

func TestPresetForLevelClamps(t *testing.T) {
	if got := PresetForLevel(0).Name; got != "level1" {
		t.Fatalf("level 0 = %s", got)
	}
	if got := PresetForLevel(100).Name; got != "level8" {
		t.Fatalf("level 100 = %s", got)
	}
	if got := PresetForLevel(3).Name; got != "level3" {
		t.Fatalf("level 3 = %s", got)
	}
}

func TestPresetDepthsIncrease(t *testing.T) {
	last := 0
	for level := 1; level <= 8; level++ {
		p := PresetForLevel(level)
		if err := ValidatePreset(p); err != nil {
			t.Fatalf("preset %s invalid: %v", p.Name, err)
		}
		if p.Depth < last {
			t.Fatalf("depth shrinks at %s: %d < %d", p.Name, p.Depth, last)
		}
		last = p.Depth
	}
}
