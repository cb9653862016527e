// Package cli implements the livescope command-line interface.
//
// The package is organized around Cobra commands. Each command resolves
// its settings and delegates to the internal packages for the real work.
//
// # Command Structure
//
// The root command runs the visualizer; subcommands cover setup and
// troubleshooting:
//
//	livescope           - Run the visualizer until q, ctrl+c or SIGTERM
//	livescope themes    - Preview the color themes
//	livescope init      - Create .livescope.yaml
//	livescope doctor    - Diagnose terminal, metrics and config
//	livescope version   - Print build information
//
// # Settings
//
// Persistent flags (--refresh, --particles, --theme, --replay, --seed,
// --log-file, --debug) are bound to viper keys, so a flag that is set
// explicitly wins over LIVESCOPE_* environment variables, which win over
// the config file, which wins over built-in defaults.
//
// # Terminal Ownership
//
// While the visualizer runs, the alternate screen owns stdout: log output
// is redirected to --log-file (or discarded) and errors are printed only
// after the terminal has been restored.
package cli
