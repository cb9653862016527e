// Package ui provides styled output for livescope's non-interactive
// surfaces: subcommand headers, theme swatches, warnings, errors and the
// farewell line printed after the visualizer exits.
//
// The full-screen visualizer does not use this package; it writes
// truecolor cells through internal/terminal directly.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Passing checks
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, suggestions
//
// ApplyColorProfile honors NO_COLOR and switches to plain text when
// output is redirected.
package ui
