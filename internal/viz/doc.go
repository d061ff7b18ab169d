// Package viz renders the fire animation with the Bubble Tea framework:
//
//   - [Model]: full-screen animation stepped by a 30ms tick
//   - [Palette]: tier-to-color tables, the classic fire colors by default
//
// Bubble Tea owns the terminal lifecycle: alt screen, hidden cursor and
// raw input are acquired when the program starts and restored on every
// exit path, including interrupts. Any key press stops the animation.
package viz
