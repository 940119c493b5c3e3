// Package viz renders a live particle cloud to the terminal.
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Camera] / [Render3D]: perspective projection of 3D points to 2D
//   - [Colormap]: maps a scalar field (density, speed) to a Theme's palette
//   - Theme selection with 5 built-in color schemes
//
// Colormap mapping is a rendering concern only; nothing under
// internal/fluid is aware that a color scale exists.
package viz
