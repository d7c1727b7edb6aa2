package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/report"
)

type YearlyModel struct {
	CommonModel
	reportService *report.Service
	userID        uuid.UUID

	year int

	// fetchSeq stamps every load; stale results are dropped.
	fetchSeq int

	rep     *report.YearlyReport
	loading bool
	status  string
}

func NewYearlyModel(reportSvc *report.Service, userID uuid.UUID) YearlyModel {
	return YearlyModel{
		reportService: reportSvc,
		userID:        userID,
		year:          time.Now().Year(),
		loading:       true,
	}
}

func (m YearlyModel) Title() string { return "Yearly Report" }

func (m YearlyModel) ShortHelp() string {
	return "Esc: back | y/Y: previous/next year"
}

func (m YearlyModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m YearlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "y":
			m.year--
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()
		case "Y":
			m.year++
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()
		}

	case yearlyReportMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.rep = msg.rep
		m.status = ""

		return m, nil
	}

	return m, nil
}

func (m YearlyModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Yearly Report - %d", m.year),
	)

	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render(header + "\n\nLoading...")
	}

	if m.status != "" {
		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.status)
	}

	var b strings.Builder

	b.WriteString(header + "\n")
	b.WriteString(fmt.Sprintf("Total spent: %s\n", FormatAmount(m.rep.GrandTotal)))

	b.WriteString(sectionStyle.Render("By month") + "\n")
	b.WriteString(m.monthView())

	b.WriteString(sectionStyle.Render("By category") + "\n")
	b.WriteString(m.categoryView())

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m YearlyModel) monthView() string {
	if len(m.rep.MonthlySeries) == 0 {
		return faintStyle.Render("No expenses.") + "\n"
	}

	var max int64
	for _, mt := range m.rep.MonthlySeries {
		if mt.Total > max {
			max = mt.Total
		}
	}

	var b strings.Builder

	for _, mt := range m.rep.MonthlySeries {
		b.WriteString(fmt.Sprintf("%-10s %10s  %s\n",
			mt.MonthName, FormatAmount(mt.Total), bar(mt.Total, max, barWidth)))
	}

	return b.String()
}

func (m YearlyModel) categoryView() string {
	if len(m.rep.CategoryTotals) == 0 {
		return faintStyle.Render("No expenses.") + "\n"
	}

	var b strings.Builder

	for _, ct := range m.rep.CategoryTotals {
		b.WriteString(fmt.Sprintf("%-16s %10s  %5s%%  %s\n",
			ct.CategoryName,
			FormatAmount(ct.Total),
			ct.Percentage,
			bar(ct.Total, m.rep.GrandTotal, barWidth),
		))
	}

	return b.String()
}

type yearlyReportMsg struct {
	seq int
	rep *report.YearlyReport
	err error
}

func (m YearlyModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	svc := m.reportService
	userID := m.userID
	year := m.year

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rep, err := svc.Yearly(ctx, userID, year)

		return yearlyReportMsg{seq: seq, rep: rep, err: err}
	}
}
