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

const barWidth = 30

var (
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

type MonthlyModel struct {
	CommonModel
	reportService *report.Service
	userID        uuid.UUID

	year  int
	month time.Month

	// fetchSeq stamps every load; stale results are dropped.
	fetchSeq int

	rep     *report.MonthlyReport
	loading bool
	status  string
}

func NewMonthlyModel(reportSvc *report.Service, userID uuid.UUID) MonthlyModel {
	now := time.Now()

	return MonthlyModel{
		reportService: reportSvc,
		userID:        userID,
		year:          now.Year(),
		month:         now.Month(),
		loading:       true,
	}
}

func (m MonthlyModel) Title() string { return "Monthly Report" }

func (m MonthlyModel) ShortHelp() string {
	return "Esc: back | m/M: previous/next month"
}

func (m MonthlyModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "m":
			m.year, m.month = prevMonth(m.year, m.month)
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()
		case "M":
			m.year, m.month = nextMonth(m.year, m.month)
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()
		}

	case monthlyReportMsg:
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

func (m MonthlyModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Monthly Report - %s %d", m.month, m.year),
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

	b.WriteString(sectionStyle.Render("By category") + "\n")
	b.WriteString(m.categoryView())

	b.WriteString(sectionStyle.Render("By account") + "\n")
	b.WriteString(m.accountView())

	b.WriteString(sectionStyle.Render("Daily spending") + "\n")
	b.WriteString(m.dailyView())

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m MonthlyModel) categoryView() string {
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

func (m MonthlyModel) accountView() string {
	if len(m.rep.AccountTotals) == 0 {
		return faintStyle.Render("No expenses.") + "\n"
	}

	var b strings.Builder

	for _, at := range m.rep.AccountTotals {
		b.WriteString(fmt.Sprintf("%-16s %10s  %5s%%  %s\n",
			at.AccountType,
			FormatAmount(at.Total),
			at.Percentage,
			bar(at.Total, m.rep.GrandTotal, barWidth),
		))
	}

	return b.String()
}

func (m MonthlyModel) dailyView() string {
	var max int64
	for _, dt := range m.rep.DailySeries {
		if dt.Total > max {
			max = dt.Total
		}
	}

	if max == 0 {
		return faintStyle.Render("No expenses.") + "\n"
	}

	var b strings.Builder

	for _, dt := range m.rep.DailySeries {
		if dt.Total == 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("%2d  .", dt.Day)) + "\n")
			continue
		}

		b.WriteString(fmt.Sprintf("%2d  %s %s\n",
			dt.Day, bar(dt.Total, max, barWidth), FormatAmount(dt.Total)))
	}

	return b.String()
}

// bar renders a horizontal bar scaled against max. Nonzero totals
// always get at least one block.
func bar(total, max int64, width int) string {
	if max <= 0 || total <= 0 {
		return ""
	}

	n := int(float64(total) / float64(max) * float64(width))
	if n < 1 {
		n = 1
	}

	return barStyle.Render(strings.Repeat("█", n))
}

type monthlyReportMsg struct {
	seq int
	rep *report.MonthlyReport
	err error
}

func (m MonthlyModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	svc := m.reportService
	userID := m.userID
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rep, err := svc.Monthly(ctx, userID, year, month)

		return monthlyReportMsg{seq: seq, rep: rep, err: err}
	}
}
