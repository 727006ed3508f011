// Package tui renders validation reports for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	mustTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	shouldTag     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a full conformance report: one status line plus
// message per result, the severity-partitioned summary, and the final
// compliance line.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("aiifcheck")
	subtitle := dimStyle.Render("AIIF Conformance Report")
	header := title + "\n" + subtitle
	if report.DocumentPath != "" {
		header += "\n\n" + titleStyle.Render(report.DocumentPath)
	}
	if report.CommitHash != "" {
		header += "\n" + dimStyle.Render("commit "+shortHash(report.CommitHash))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	for _, result := range report.Results {
		renderResult(&b, result)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	summary := report.Summary
	b.WriteString(fmt.Sprintf("  %s %d\n", titleStyle.Render("Total checks:"), summary.Total))
	b.WriteString(fmt.Sprintf("  %s %d\n", mustTagStyle.Render("MUST failures:"), summary.MustFailures))
	b.WriteString(fmt.Sprintf("  %s %d\n", shouldTag.Render("SHOULD failures:"), summary.ShouldFailures))
	b.WriteString("\n")

	if report.Compliant {
		b.WriteString("  " + passStyle.Render("Result: COMPLIANT (all MUST checks passed)") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Result: NOT COMPLIANT (one or more MUST checks failed)") + "\n")
	}

	return b.String()
}

func renderResult(b *strings.Builder, result domain.CheckResult) {
	status := passStyle.Render("[PASS]")
	if !result.Passed {
		status = failStyle.Render("[FAIL]")
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n", status, result.CheckID, levelTag(result.Level)))
	b.WriteString("         " + dimStyle.Render(result.Message) + "\n")
}

func levelTag(level domain.Severity) string {
	tag := fmt.Sprintf("(%s)", level)
	switch level {
	case domain.SeverityMust:
		return mustTagStyle.Render(tag)
	case domain.SeverityShould:
		return shouldTag.Render(tag)
	default:
		return infoTagStyle.Render(tag)
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
