// pkg/report/report.go

// Package report renders core results as styled terminal text and as
// JSON/YAML export values. Reports are ephemeral: nothing here persists
// anything, writing output somewhere is the caller's business.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/breachsim"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/wifisim"
)

// Format selects a rendering for exported values.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", cerr.Newf("unknown format %q (want text, json or yaml)", s)
	}
}

// Export marshals v per the requested non-text format.
func Export(v interface{}, f Format) (string, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", cerr.Wrap(err, "marshal json")
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", cerr.Wrap(err, "marshal yaml")
		}
		return string(b), nil
	default:
		return "", cerr.Newf("format %q is not an export format", f)
	}
}

func line(label, value string) string {
	return LabelStyle.Render(label) + " " + value + "\n"
}

// RenderStrength renders one password assessment. The password itself never
// appears; breach may be nil when the check was not requested.
func RenderStrength(rep strength.Report, breach *breachsim.Result) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("PASSWORD STRENGTH ANALYSIS") + "\n\n")

	scoreLine := fmt.Sprintf("%s (%d/100)", rep.Category, rep.Score)
	b.WriteString(line("Strength", ScoreStyle(rep.Score).Render(scoreLine)))
	b.WriteString(line("Length", fmt.Sprintf("%d characters", rep.Length)))
	b.WriteString(line("Entropy", fmt.Sprintf("%.1f bits", rep.EntropyBits)))
	b.WriteString("\n" + HeaderStyle.Render("Estimated crack times") + "\n")
	for _, ct := range rep.CrackTimes {
		display := ct.Display
		if ct.Uncrackable {
			display = SuccessStyle.Render(display)
		}
		b.WriteString(line(tierLabel(ct.Tier), display))
	}

	if len(rep.Findings) > 0 {
		b.WriteString("\n" + HeaderStyle.Render("Weaknesses detected") + "\n")
		for _, f := range rep.Findings {
			b.WriteString(ErrorStyle.Render("  ✗ ") + describeFinding(f) + "\n")
		}
	} else if rep.Length > 0 {
		b.WriteString("\n" + SuccessStyle.Render("  ✓ no weakening patterns detected") + "\n")
	}

	if breach != nil {
		b.WriteString("\n" + HeaderStyle.Render("Breach check") + "\n")
		if breach.Breached {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("  ✗ found in %d simulated breach records — change this password\n", breach.Count)))
		} else {
			b.WriteString(SuccessStyle.Render("  ✓ not present in the simulated corpus\n"))
		}
		b.WriteString(MutedStyle.Render("  "+breach.Note) + "\n")
	}

	b.WriteString("\n" + MutedStyle.Render("entropy is a heuristic proxy, not a formal security bound") + "\n")
	return b.String()
}

func tierLabel(tier string) string {
	switch tier {
	case strength.TierOnlineThrottled:
		return "online"
	case strength.TierOfflineSlowHash:
		return "offline slow"
	case strength.TierOfflineFastHash:
		return "offline fast"
	default:
		return tier
	}
}

func describeFinding(f strength.Finding) string {
	span := fmt.Sprintf(" [%d:%d]", f.Start, f.End)
	switch f.Kind {
	case strength.FindingDictionaryWord:
		return "contains a dictionary word" + span
	case strength.FindingSequentialRun:
		return "contains a sequential character run" + span
	case strength.FindingRepeatedRun:
		return "contains a repeated character run" + span
	case strength.FindingKeyboardAdjacency:
		return "contains a keyboard walk" + span
	case strength.FindingAllNumeric:
		return "consists of digits only"
	case strength.FindingAllAlpha:
		return "consists of letters only"
	default:
		return f.Kind.String() + span
	}
}

// RenderSurvey renders a simulated wireless survey as a table, with
// per-network assessments when audit is set.
func RenderSurvey(s wifisim.Survey, audit bool) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("WIRELESS SECURITY SURVEY") + "\n")
	b.WriteString(MutedStyle.Render(s.Note) + "\n\n")

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-18s %-18s %4s %7s %-16s %s",
		"SSID", "BSSID", "CH", "SIGNAL", "SECURITY", "RISK")) + "\n")
	for _, n := range s.Networks {
		row := fmt.Sprintf("%-18s %-18s %4d %6d%% %-16s ", n.SSID, n.BSSID, n.Channel, n.Signal, n.Security)
		b.WriteString(row + riskStyle(n.Risk).Render(n.Risk.String()) + "\n")
	}

	if audit {
		b.WriteString("\n" + HeaderStyle.Render("Assessments") + "\n")
		for _, n := range s.Networks {
			b.WriteString(fmt.Sprintf("  %s: %s\n", n.SSID, wifisim.Assessment(n)))
		}
	}
	return b.String()
}

func riskStyle(r wifisim.Risk) lipgloss.Style {
	switch r {
	case wifisim.RiskCritical, wifisim.RiskHigh:
		return ErrorStyle
	case wifisim.RiskMedium:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// BatchEntry is one line of a batch audit. Passwords are masked down to a
// short prefix so a weak-password report is not itself a password list.
type BatchEntry struct {
	Masked   string            `json:"password" yaml:"password"`
	Score    int               `json:"score" yaml:"score"`
	Category strength.Category `json:"category" yaml:"category"`
}

// BatchSummary aggregates a batch password audit.
type BatchSummary struct {
	Total         int          `json:"total" yaml:"total"`
	Weak          int          `json:"weak" yaml:"weak"`
	WeakThreshold int          `json:"weak_threshold" yaml:"weak_threshold"`
	WeakEntries   []BatchEntry `json:"weak_entries,omitempty" yaml:"weak_entries,omitempty"`
}

// MaskPassword keeps a short recognizable prefix and hides the rest.
func MaskPassword(password string) string {
	runes := []rune(password)
	if len(runes) <= 3 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:3]) + strings.Repeat("*", len(runes)-3)
}

// BuildBatchSummary scores each password and collects the weak ones.
func BuildBatchSummary(ev *strength.Evaluator, passwords []string, weakThreshold int) BatchSummary {
	summary := BatchSummary{Total: len(passwords), WeakThreshold: weakThreshold}
	for _, pw := range passwords {
		rep := ev.Evaluate(pw)
		if rep.Score < weakThreshold {
			summary.Weak++
			summary.WeakEntries = append(summary.WeakEntries, BatchEntry{
				Masked:   MaskPassword(pw),
				Score:    rep.Score,
				Category: rep.Category,
			})
		}
	}
	return summary
}

// RenderBatch renders a batch audit summary.
func RenderBatch(s BatchSummary) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("BATCH PASSWORD AUDIT") + "\n\n")
	b.WriteString(line("Checked", fmt.Sprintf("%d passwords", s.Total)))
	weakLine := fmt.Sprintf("%d below score %d", s.Weak, s.WeakThreshold)
	if s.Weak > 0 {
		b.WriteString(line("Weak", ErrorStyle.Render(weakLine)))
		b.WriteString("\n" + HeaderStyle.Render("Weak passwords") + "\n")
		for _, e := range s.WeakEntries {
			b.WriteString(fmt.Sprintf("  %-20s %3d/100 %s\n", e.Masked, e.Score, e.Category))
		}
		b.WriteString("\n" + WarningStyle.Render("change the passwords above and prefer 12+ characters with mixed classes") + "\n")
	} else {
		b.WriteString(line("Weak", SuccessStyle.Render(weakLine)))
	}
	return b.String()
}

// RenderQuick renders the quick security overview: the built-in weak
// password sample scored by the engine plus a simulated survey digest.
func RenderQuick(ev *strength.Evaluator, survey wifisim.Survey) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("QUICK SECURITY CHECK") + "\n\n")

	b.WriteString(HeaderStyle.Render("Common password sample") + "\n")
	for _, pw := range []string{"password", "123456", "admin", "welcome", "qwerty"} {
		rep := ev.Evaluate(pw)
		b.WriteString(fmt.Sprintf("  %-10s %s\n", pw,
			ScoreStyle(rep.Score).Render(fmt.Sprintf("%3d/100 %s", rep.Score, rep.Category))))
	}

	insecure := 0
	for _, n := range survey.Networks {
		if n.Risk == wifisim.RiskHigh || n.Risk == wifisim.RiskCritical {
			insecure++
		}
	}
	b.WriteString("\n" + HeaderStyle.Render("Wireless digest") + "\n")
	b.WriteString(fmt.Sprintf("  %d networks observed, %d insecure\n", len(survey.Networks), insecure))
	b.WriteString(MutedStyle.Render("  "+survey.Note) + "\n")

	b.WriteString("\n" + HeaderStyle.Render("Recommendations") + "\n")
	for _, r := range []string{
		"enable two-factor authentication",
		"use a password manager",
		"use WPA2/WPA3 and change default router credentials",
		"keep software and firmware updated",
	} {
		b.WriteString("  • " + r + "\n")
	}
	return b.String()
}
