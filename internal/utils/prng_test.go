package utils

import (
	"go-robotron/internal/defs"
	"testing"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Expected identical sequences for identical seeds, diverged at %d", i)
		}
	}
}

func TestPRNGService_ZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Error("Expected non-zero seed when created with 0")
	}
}

func TestPRNGService_Range(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(-3, 3)
		if v < -3 || v >= 3 {
			t.Fatalf("Expected value in [-3, 3), got %f", v)
		}
	}
}

func TestPRNGService_ChanceBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Expected Chance(0) to never succeed")
		}
		if !s.Chance(1) {
			t.Fatal("Expected Chance(1) to always succeed")
		}
	}
}

func TestPRNGService_ChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[string(s.ChooseWeighted(defs.RobotLibrary).Variant)]++
	}

	grunts := counts[string(defs.RobotLibrary[0].Variant)]
	if grunts < 6500 || grunts > 7500 {
		t.Errorf("Expected roughly 70%% grunts, got %d of 10000", grunts)
	}
}

func TestPRNGService_ChooseWeightedEdgeCases(t *testing.T) {
	s := NewPRNGService(1)

	if got := s.ChooseWeighted(nil); got.Weight != 0 || got.Points != 0 {
		t.Errorf("Expected zero definition for empty table, got %+v", got)
	}

	zero := []defs.RobotDefinition{{Points: 1}, {Points: 2}}
	if got := s.ChooseWeighted(zero); got.Points != 1 {
		t.Errorf("Expected first entry when weights are zero, got %+v", got)
	}
}
