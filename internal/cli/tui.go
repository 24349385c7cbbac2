package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pathmax/pathmax/pkg/bench"
)

// =============================================================================
// CompareModel - Live progress for comparison runs
// =============================================================================

// caseMsg reports one finished comparison case.
type caseMsg struct {
	index int
	total int
	res   bench.CaseResult
}

// runDoneMsg signals that the whole run finished (or failed).
type runDoneMsg struct {
	err error
}

// CompareModel is the bubbletea model showing comparison progress.
// Cases arrive as caseMsg events sent from the runner goroutine.
type CompareModel struct {
	Total    int
	Done     int
	Failed   int
	LastFile string
	LastLine string
	Quitting bool
	Err      error
}

// NewCompareModel creates a progress model for total cases.
func NewCompareModel(total int) CompareModel {
	return CompareModel{Total: total}
}

func (m CompareModel) Init() tea.Cmd {
	return nil
}

func (m CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		}
	case caseMsg:
		m.Done = msg.index + 1
		m.LastFile = msg.res.File
		m.LastLine = caseLine(msg.res)
		if msg.res.Error != "" {
			m.Failed++
		}
	case runDoneMsg:
		m.Err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m CompareModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Comparing solvers"))
	b.WriteString("\n\n")

	b.WriteString(renderBar(m.Done, m.Total, 30))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Done, m.Total)))
	if m.Failed > 0 {
		b.WriteString("  " + StyleWarning.Render(fmt.Sprintf("%d failed", m.Failed)))
	}
	b.WriteString("\n")

	if m.LastFile != "" {
		b.WriteString(StyleDim.Render("  "+m.LastFile) + "  " + m.LastLine + "\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to abort"))
	b.WriteString("\n")
	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := StyleNumber.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return bar
}

// caseLine formats a one-line status for a finished case.
func caseLine(res bench.CaseResult) string {
	switch {
	case res.Error != "":
		return StyleWarning.Render("error")
	case res.ExactSkipped:
		return StyleDim.Render(fmt.Sprintf("approx %d (exact skipped)", int64(res.ApproxValue)))
	case res.Ratio == 1:
		return StyleSuccess.Render("optimal")
	default:
		return StyleValue.Render(fmt.Sprintf("%.1f%% of optimal", res.Ratio*100))
	}
}

// =============================================================================
// Summary Table
// =============================================================================

// renderSummaryTable renders the per-case results and aggregate stats of a
// finished comparison run as a bordered table.
func renderSummaryTable(report *bench.Report) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, c := range report.Cases {
		exact := "—"
		ratio := "—"
		if c.Error != "" {
			exact = "error"
		} else if !c.ExactSkipped {
			exact = fmt.Sprintf("%d", int64(c.ExactValue))
			ratio = fmt.Sprintf("%.3f", c.Ratio)
		}
		approxVal := "—"
		if c.Error == "" {
			approxVal = fmt.Sprintf("%d", int64(c.ApproxValue))
		}
		rows = append(rows, []string{
			c.File,
			fmt.Sprintf("%d", c.Vertices),
			exact,
			approxVal,
			ratio,
			fmt.Sprintf("%.0fms", c.ExactMillis+c.ApproxMillis),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Case", "Vertices", "Exact", "Approx", "Ratio", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")

	s := report.Summary
	line := fmt.Sprintf("%d cases", s.Cases)
	if s.Compared > 0 {
		line += fmt.Sprintf(" · %d/%d optimal · mean ratio %.3f · worst %.3f",
			s.Optimal, s.Compared, s.MeanRatio, s.WorstRatio)
	}
	if s.Failed > 0 {
		line += fmt.Sprintf(" · %d failed", s.Failed)
	}
	b.WriteString(StyleDim.Render(line))
	b.WriteString("\n")
	return b.String()
}
