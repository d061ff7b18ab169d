// Package fire implements the heat-diffusion engine behind the BUNIT
// terminal fire effect.
//
// The simulation runs over a flat integer buffer mapped onto a 2-D grid:
//
//   - [Sim]: heat buffer with per-frame injection and diffusion
//   - [Glyph]: ten-step character ramp from coldest to hottest
//   - [HeatTier]: four-level color classification of a heat value
//
// Each frame seeds the bottom row with hot cells and then sweeps the grid
// once in ascending index order, replacing every cell with the integer
// mean of itself and three forward neighbors. The sweep is in place, so
// the smoothing is forward-biased; that bias is what makes the flames
// lick upward.
package fire
