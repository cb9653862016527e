package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/livescope/internal/config"
	"github.com/rileyhilliard/livescope/internal/doctor"
	"github.com/rileyhilliard/livescope/internal/metrics"
	"github.com/rileyhilliard/livescope/internal/scope"
	"github.com/rileyhilliard/livescope/internal/ui"
	"github.com/rileyhilliard/livescope/internal/util"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the terminal, metric source and config",
	Long: `Run diagnostic checks before starting the visualizer:

  TERMINAL  stdout is a terminal, its size, and its color support
  METRICS   the metric source opens, reports at least one core and samples
  CONFIG    the config file loads and the effective settings are valid

Also lists the key bindings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := collectChecks(cmd)
		results := doctor.RunAll(checks)

		if doctorJSON {
			return outputDoctorJSON(cmd.OutOrStdout(), checks, results)
		}
		ui.ApplyColorProfileFor(cmd.OutOrStdout())
		outputDoctorText(cmd.OutOrStdout(), checks, results)
		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []doctor.CategoryResults `json:"categories"`
	Keys       []KeyOutput              `json:"keys"`
	Summary    SummaryOutput            `json:"summary"`
}

// KeyOutput describes one key binding.
type KeyOutput struct {
	Keys   []string `json:"keys"`
	Action string   `json:"action"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// collectChecks builds the check list from the effective settings. A
// settings error is reported by the CONFIG checks; the rest run on defaults.
func collectChecks(cmd *cobra.Command) []doctor.Check {
	explicit, _ := cmd.Flags().GetString("config")

	cfg, _, resolveErr := resolveConfig(cmd)
	effective := cfg
	if effective == nil {
		effective = config.DefaultConfig()
	}

	label := procLabel
	if effective.Replay != "" {
		label = effective.Replay
	}

	return []doctor.Check{
		&doctor.TTYCheck{IsTerminal: stdoutIsTerminal},
		&doctor.SizeCheck{Size: func() (int, int, error) { return newScreen().Size() }},
		&doctor.ColorCheck{Profile: colorProfile()},
		&doctor.SourceCheck{
			Label: label,
			Open: func() (metrics.Source, error) {
				src, _, err := openSource(effective)
				return src, err
			},
		},
		&doctor.ConfigFileCheck{ConfigPath: explicit},
		&doctor.SettingsCheck{Config: cfg, Err: resolveErr},
		&doctor.ThemeCheck{Theme: effective.Theme},
	}
}

// keyOutputs lists the default bindings in help order.
func keyOutputs() []KeyOutput {
	bindings := scope.DefaultKeys.Bindings()
	out := make([]KeyOutput, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, KeyOutput{Keys: b.Keys(), Action: b.Help().Desc})
	}
	return out
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Categories: doctor.Group(checks, results),
		Keys:       keyOutputs(),
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasIssues(results),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{
		Title:   "Diagnostic Report",
		Version: formatVersion(version),
	}))
	fmt.Fprintln(w)

	for _, group := range doctor.Group(checks, results) {
		fmt.Fprintln(w, headerStyle.Render(group.Name))
		for _, result := range group.Results {
			renderCheckResult(w, result)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, headerStyle.Render("KEYS"))
	for _, k := range keyOutputs() {
		fmt.Fprintf(w, "  %-10s %s\n", util.JoinOrDefault(k.Keys, "(unbound)"), ui.MutedStyle().Render(k.Action))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, ui.MutedStyle().Render(ui.Divider(60)))
	fmt.Fprintln(w)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), doctor.Summary(results))
	}
	fmt.Fprintln(w)
}

// renderCheckResult renders a single check result.
func renderCheckResult(w io.Writer, result doctor.CheckResult) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolSuccess
		style = ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol = ui.SymbolWarning
		style = ui.WarningStyle()
	default:
		symbol = ui.SymbolFail
		style = ui.ErrorStyle()
	}

	fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
