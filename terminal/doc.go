// Package terminal provides the styled cell primitive and its ANSI encoding.
//
// Features:
//   - Cells holding exactly one grapheme with optional foreground/background
//   - Named ANSI, 24-bit and xterm-256 color output
//   - Color capability detection from the environment (COLORTERM, TERM, NO_COLOR)
//
// Escape sequences are emitted directly; terminfo is not consulted.
package terminal
