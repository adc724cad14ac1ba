package config

import (
	"math"
	"testing"
)

// TestSkillTransforms verifies each catalog skill touches exactly its stat
func TestSkillTransforms(t *testing.T) {
	base := DefaultGame()

	tests := []struct {
		id   SkillID
		want Game
	}{
		{SkillTitanGlove, Game{HookSpeed: 8, StrengthMultiplier: 1.5, GoldMultiplier: 1, TimeLimit: 60, Luck: 1}},
		{SkillMidasTouch, Game{HookSpeed: 8, StrengthMultiplier: 1, GoldMultiplier: 1.25, TimeLimit: 60, Luck: 1}},
		{SkillChronosDial, Game{HookSpeed: 8, StrengthMultiplier: 1, GoldMultiplier: 1, TimeLimit: 75, Luck: 1}},
		{SkillLuckyClover, Game{HookSpeed: 8, StrengthMultiplier: 1, GoldMultiplier: 1, TimeLimit: 60, Luck: 1.5}},
		{SkillLaserSight, Game{HookSpeed: 9.6, StrengthMultiplier: 1, GoldMultiplier: 1, TimeLimit: 60, Luck: 1}},
	}

	for _, tc := range tests {
		s, err := SkillByID(tc.id)
		if err != nil {
			t.Fatalf("SkillByID(%d): %v", tc.id, err)
		}
		got := s.Apply(base)
		if !gameNear(got, tc.want) {
			t.Errorf("%s: expected %+v, got %+v", s.Name, tc.want, got)
		}
	}

	if base != DefaultGame() {
		t.Error("Apply must not mutate its input")
	}
}

func TestSkillsStack(t *testing.T) {
	g := DefaultGame()
	glove, _ := SkillByID(SkillTitanGlove)
	g = glove.Apply(glove.Apply(g))
	if g.StrengthMultiplier != 2 {
		t.Errorf("Expected stacked strength 2, got %v", g.StrengthMultiplier)
	}
}

func TestSkillCatalog(t *testing.T) {
	all := Skills()
	if len(all) != 5 {
		t.Fatalf("Expected 5 skills, got %d", len(all))
	}
	keys := make(map[string]bool)
	for i, s := range all {
		if s.ID != SkillID(i) {
			t.Errorf("Expected skill %d at index %d, got %d", i, i, s.ID)
		}
		if keys[s.Key] {
			t.Errorf("Duplicate skill key %q", s.Key)
		}
		keys[s.Key] = true
	}
	if _, err := SkillByID(SkillCount); err == nil {
		t.Error("Expected error for out-of-range skill")
	}
}

func gameNear(a, b Game) bool {
	near := func(x, y float64) bool { return math.Abs(x-y) < 1e-9 }
	return near(a.HookSpeed, b.HookSpeed) &&
		near(a.StrengthMultiplier, b.StrengthMultiplier) &&
		near(a.GoldMultiplier, b.GoldMultiplier) &&
		near(a.TimeLimit, b.TimeLimit) &&
		near(a.Luck, b.Luck)
}
