// pkg/report/report_test.go

package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/breachsim"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/wifisim"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestExport(t *testing.T) {
	ev := strength.NewEvaluator(strength.DefaultParams())
	rep := ev.Evaluate("aB3!xK9#")

	out, err := Export(rep, FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "entropy_bits")
	assert.Contains(t, decoded, "crack_times")
	assert.Contains(t, decoded, "category")

	yamlOut, err := Export(rep, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "score:")

	_, err = Export(rep, FormatText)
	assert.Error(t, err, "text is a rendering, not an export format")
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "ab", want: "**"},
		{in: "abc", want: "***"},
		{in: "abcdef", want: "abc***"},
		{in: "pässwörd", want: "päs*****"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskPassword(tt.in), "input %q", tt.in)
	}
}

func TestBuildBatchSummary(t *testing.T) {
	ev := strength.NewEvaluator(strength.DefaultParams())

	summary := BuildBatchSummary(ev, []string{"password", "123456", "kT7#mQ2v!xR4pL8@"}, 40)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Weak)
	assert.Equal(t, 40, summary.WeakThreshold)
	require.Len(t, summary.WeakEntries, 2)
	assert.Equal(t, "pas*****", summary.WeakEntries[0].Masked)
	assert.Equal(t, "123***", summary.WeakEntries[1].Masked)
	for _, e := range summary.WeakEntries {
		assert.Less(t, e.Score, 40)
	}
}

func TestRenderStrengthHidesPassword(t *testing.T) {
	ev := strength.NewEvaluator(strength.DefaultParams())
	const pw = "Sup3rSecretValue!"
	out := RenderStrength(ev.Evaluate(pw), nil)

	assert.NotContains(t, out, pw)
	assert.Contains(t, out, "PASSWORD STRENGTH ANALYSIS")
	assert.Contains(t, out, "bits")
}

func TestRenderStrengthWithBreach(t *testing.T) {
	ev := strength.NewEvaluator(strength.DefaultParams())
	rep := ev.Evaluate("password")

	breached := &breachsim.Result{Breached: true, Count: 9707564, Note: breachsim.SimulationNote}
	out := RenderStrength(rep, breached)
	assert.Contains(t, out, "9707564")
	assert.Contains(t, out, breachsim.SimulationNote)

	clean := &breachsim.Result{Note: breachsim.SimulationNote}
	out = RenderStrength(rep, clean)
	assert.Contains(t, out, "not present")
}

func TestRenderSurvey(t *testing.T) {
	survey := wifisim.NewScanner().Scan()

	out := RenderSurvey(survey, false)
	assert.Contains(t, out, "WIRELESS SECURITY SURVEY")
	assert.Contains(t, out, survey.Note)
	for _, n := range survey.Networks {
		assert.Contains(t, out, n.SSID)
	}
	assert.NotContains(t, out, "Assessments")

	audited := RenderSurvey(survey, true)
	assert.Contains(t, audited, "Assessments")
}

func TestRenderBatch(t *testing.T) {
	clean := RenderBatch(BatchSummary{Total: 5, WeakThreshold: 40})
	assert.Contains(t, clean, "5 passwords")
	assert.Contains(t, clean, "0 below score 40")
	assert.NotContains(t, clean, "Weak passwords")

	withWeak := RenderBatch(BatchSummary{
		Total: 2, Weak: 1, WeakThreshold: 40,
		WeakEntries: []BatchEntry{{Masked: "pas*****", Score: 3, Category: strength.VeryWeak}},
	})
	assert.Contains(t, withWeak, "Weak passwords")
	assert.Contains(t, withWeak, "pas*****")
}

func TestRenderQuick(t *testing.T) {
	ev := strength.NewEvaluator(strength.DefaultParams())
	out := RenderQuick(ev, wifisim.NewScanner().Scan())

	assert.Contains(t, out, "QUICK SECURITY CHECK")
	assert.Contains(t, out, "password")
	assert.Contains(t, out, "networks observed")
	assert.Contains(t, out, "two-factor")
}
