// pkg/dashboard/dashboard.go

// Package dashboard is the interactive shell: a bubbletea program with
// tabs for live password analysis, generation and the simulated wireless
// survey. It renders core output only; all computation stays in the core
// packages.
package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	cerr "github.com/cockroachdb/errors"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/breachsim"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/passgen"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/report"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/strength"
	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/wifisim"
)

type tab int

const (
	tabAnalyze tab = iota
	tabGenerate
	tabScan
	numTabs
)

func (t tab) title() string {
	switch t {
	case tabAnalyze:
		return "Analyze"
	case tabGenerate:
		return "Generate"
	case tabScan:
		return "Scan"
	default:
		return "?"
	}
}

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(report.ColorPrimary).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(report.ColorMuted)
	helpStyle        = lipgloss.NewStyle().Foreground(report.ColorMuted)
)

type scanDoneMsg struct {
	survey wifisim.Survey
}

// Model is the dashboard state.
type Model struct {
	evaluator *strength.Evaluator
	checker   *breachsim.Checker
	scanner   *wifisim.Scanner

	active   tab
	input    textinput.Model
	spin     spinner.Model
	scanning bool

	analysis  *strength.Report
	breach    *breachsim.Result
	generated string
	genReport *strength.Report
	genErr    error
	survey    *wifisim.Survey
}

// New builds the dashboard model around an evaluator.
func New(ev *strength.Evaluator) Model {
	input := textinput.New()
	input.Placeholder = "type a password to analyze"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(report.ColorPrimary)

	return Model{
		evaluator: ev,
		checker:   breachsim.NewChecker(),
		scanner:   wifisim.NewScanner(),
		input:     input,
		spin:      spin,
	}
}

// Run starts the dashboard program.
func Run(ev *strength.Evaluator) error {
	_, err := tea.NewProgram(New(ev), tea.WithAltScreen()).Run()
	return cerr.Wrap(err, "run dashboard")
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) startScan() (Model, tea.Cmd) {
	m.scanning = true
	scanner := m.scanner
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		return scanDoneMsg{survey: scanner.Scan()}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % numTabs
			if m.active == tabScan && m.survey == nil && !m.scanning {
				return m.startScan()
			}
			return m, nil
		case "shift+tab":
			m.active = (m.active + numTabs - 1) % numTabs
			return m, nil
		}

		switch m.active {
		case tabAnalyze:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			password := m.input.Value()
			if password == "" {
				m.analysis = nil
				m.breach = nil
			} else {
				rep := m.evaluator.Evaluate(password)
				m.analysis = &rep
				res := m.checker.Check(password)
				m.breach = &res
			}
			return m, cmd
		case tabGenerate:
			if msg.String() == "g" {
				m.generated, m.genErr = passgen.Generate(passgen.DefaultConfig())
				if m.genErr == nil {
					rep := m.evaluator.Evaluate(m.generated)
					m.genReport = &rep
				}
			}
			return m, nil
		case tabScan:
			if msg.String() == "s" && !m.scanning {
				return m.startScan()
			}
			return m, nil
		}

	case scanDoneMsg:
		m.scanning = false
		m.survey = &msg.survey
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(report.TitleStyle.Render("SENTINEL") + "  ")
	for t := tab(0); t < numTabs; t++ {
		style := inactiveTabStyle
		if t == m.active {
			style = activeTabStyle
		}
		b.WriteString(style.Render(t.title()) + "  ")
	}
	b.WriteString("\n\n")

	switch m.active {
	case tabAnalyze:
		b.WriteString(m.input.View() + "\n\n")
		if m.analysis != nil {
			b.WriteString(report.RenderStrength(*m.analysis, m.breach))
		} else {
			b.WriteString(helpStyle.Render("start typing for a live assessment") + "\n")
		}
	case tabGenerate:
		if m.genErr != nil {
			b.WriteString(report.ErrorStyle.Render("generation failed: "+m.genErr.Error()) + "\n")
		} else if m.generated != "" {
			b.WriteString(report.PanelStyle.Render(m.generated) + "\n\n")
			if m.genReport != nil {
				b.WriteString(report.RenderStrength(*m.genReport, nil))
			}
		} else {
			b.WriteString(helpStyle.Render("press g to generate a password") + "\n")
		}
	case tabScan:
		if m.scanning {
			b.WriteString(m.spin.View() + " scanning...\n")
		} else if m.survey != nil {
			b.WriteString(report.RenderSurvey(*m.survey, false))
			b.WriteString("\n" + helpStyle.Render("press s to rescan") + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("tab: switch panes • esc: quit") + "\n")
	return b.String()
}
