package fire

import "testing"

func TestGlyphClamp(t *testing.T) {
	if Glyph(0) != ' ' {
		t.Errorf("expected coldest glyph to be space, got %q", Glyph(0))
	}
	if Glyph(9) != '$' {
		t.Errorf("expected hottest glyph to be $, got %q", Glyph(9))
	}
	for v := 10; v < 100; v += 7 {
		if Glyph(v) != '$' {
			t.Errorf("heat %d: expected clamp to $, got %q", v, Glyph(v))
		}
	}
}

func TestGlyphMonotonic(t *testing.T) {
	rank := func(b byte) int {
		for i, r := range ramp {
			if r == b {
				return i
			}
		}
		t.Fatalf("glyph %q not on ramp", b)
		return -1
	}

	for v1 := 0; v1 < 30; v1++ {
		for v2 := v1 + 1; v2 <= 30; v2++ {
			if rank(Glyph(v1)) > rank(Glyph(v2)) {
				t.Errorf("glyph rank decreased: heat %d -> %q, heat %d -> %q", v1, Glyph(v1), v2, Glyph(v2))
			}
		}
	}
}

func TestHeatTierThresholds(t *testing.T) {
	tests := []struct {
		heat int
		want Tier
	}{
		{0, TierBackground},
		{4, TierBackground},
		{5, TierOrange},
		{9, TierOrange},
		{10, TierYellow},
		{15, TierYellow},
		{16, TierRed},
		{65, TierRed},
	}

	for _, tt := range tests {
		if got := HeatTier(tt.heat); got != tt.want {
			t.Errorf("heat %d: expected tier %d, got %d", tt.heat, tt.want, got)
		}
	}
}
