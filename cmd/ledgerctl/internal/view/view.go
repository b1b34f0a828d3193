package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

var (
	printer = message.NewPrinter(language.English)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Amount formats a decimal with thousands separators and two decimals.
func Amount(d decimal.Decimal) string {
	return pledge.FormatAmount(printer, d)
}

func percent(p float64) string {
	return printer.Sprintf("%.1f%%", p)
}

func newTable(headers []string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func section(title string, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), body, "")
}

// Initiative renders a single initiative with its progress.
func Initiative(in *initiative.Initiative) string {
	p := in.Progress()

	t := newTable([]string{"Field", "Value"}).
		Row("ID", in.ID.String()).
		Row("Status", string(in.Status)).
		Row("Amount", fmt.Sprintf("%s / %s (%s)", Amount(in.CurrentAmount), Amount(in.TargetAmount), percent(p.AmountPercent))).
		Row("Participants", fmt.Sprintf("%d / %d (%s)", in.CurrentParticipants, in.TargetParticipants, percent(p.ParticipantPercent))).
		Row("Created", in.CreatedAt.Format("2006-01-02 15:04"))

	body := t.String()
	if in.Description != "" {
		body = faintStyle.Render(in.Description) + "\n" + body
	}

	return section(in.Title, body)
}

// Initiatives renders a one-line-per-initiative summary.
func Initiatives(list []*initiative.Initiative) string {
	if len(list) == 0 {
		return faintStyle.Render("No initiatives found.")
	}

	t := newTable([]string{"ID", "Title", "Status", "Raised", "Target", "Participants"}, 3, 4, 5)
	for _, in := range list {
		t.Row(
			in.ID.String(),
			in.Title,
			string(in.Status),
			Amount(in.CurrentAmount),
			Amount(in.TargetAmount),
			fmt.Sprintf("%d/%d", in.CurrentParticipants, in.TargetParticipants),
		)
	}

	return t.String()
}

// Report renders every section of an analytics report.
func Report(r *analytics.Report) string {
	var b strings.Builder

	header := fmt.Sprintf("Pledge report %s to %s",
		r.Filter.From.Format("2006-01-02"),
		r.Filter.To.AddDate(0, 0, -1).Format("2006-01-02"),
	)
	b.WriteString(titleStyle.Render(header) + "\n\n")

	overall := newTable([]string{"Pledges", "Total", "Contributors", "Average", "M/F/O/U"}, 0, 1, 2, 3).
		Row(
			printer.Sprintf("%d", r.Overall.Count),
			Amount(r.Overall.Total),
			printer.Sprintf("%d", r.Overall.Contributors),
			Amount(r.Overall.Average()),
			fmt.Sprintf("%d/%d/%d/%d", r.Overall.Genders.Male, r.Overall.Genders.Female, r.Overall.Genders.Other, r.Overall.Genders.Unspecified),
		)
	b.WriteString(section("Overall", overall.String()))

	progress := newTable([]string{"Initiative", "Status", "Raised", "Amount %", "Participants %"}, 2, 3, 4)
	for _, p := range r.Initiatives {
		progress.Row(p.Title, string(p.Status), Amount(p.CurrentAmount), percent(p.Progress.AmountPercent), percent(p.Progress.ParticipantPercent))
	}
	b.WriteString(section("Initiatives", progress.String()))

	regions := newTable([]string{"Region", "Pledges", "Total"}, 1, 2)
	for _, rt := range r.Regions {
		regions.Row(rt.Region, printer.Sprintf("%d", rt.Count), Amount(rt.Total))
	}
	b.WriteString(section("Regions", regions.String()))

	trend := newTable([]string{"Day", "Pledges", "Total"}, 1, 2)
	for _, d := range r.Trend {
		trend.Row(d.Day.Format("2006-01-02"), printer.Sprintf("%d", d.Count), Amount(d.Total))
	}
	b.WriteString(section("Daily trend", trend.String()))

	buckets := newTable([]string{"Amount", "Pledges", "Total"}, 1, 2)
	for _, bk := range r.Buckets {
		buckets.Row(bk.Label(), printer.Sprintf("%d", bk.Count), Amount(bk.Total))
	}
	b.WriteString(section("Amount distribution", buckets.String()))

	leaders := newTable([]string{"#", "Contributor", "Pledges", "Total"}, 0, 2, 3)
	for i, e := range r.Leaderboard {
		leaders.Row(fmt.Sprintf("%d", i+1), e.Name, printer.Sprintf("%d", e.Pledges), Amount(e.Total))
	}
	b.WriteString(section("Top contributors", leaders.String()))

	return b.String()
}
