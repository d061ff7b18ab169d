package fire

// ramp is the ten-glyph scale from coldest to hottest.
var ramp = [10]byte{' ', '.', ':', '^', '*', 'x', 's', 'S', '#', '$'}

// Glyph maps a heat value onto the ramp. Values past the top of the
// ramp all render as the hottest glyph.
func Glyph(v int) byte {
	if v < 0 {
		v = 0
	}
	if v > 9 {
		v = 9
	}
	return ramp[v]
}

// Tier is one of the four discrete color levels, from coolest to
// hottest. Values start at 1 so the zero Tier is invalid.
type Tier int

const (
	TierBackground Tier = iota + 1
	TierOrange
	TierYellow
	TierRed
)

// HeatTier selects the color tier for a heat value:
// 0..4 background, 5..9 orange, 10..15 yellow, above 15 red.
func HeatTier(v int) Tier {
	switch {
	case v > 15:
		return TierRed
	case v > 9:
		return TierYellow
	case v > 4:
		return TierOrange
	default:
		return TierBackground
	}
}
