package formatter

import (
	"strings"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/planner"
)

func FormatPlan(p *contract.PlanResponse) string {
	var b strings.Builder
	b.WriteString(Header("Plan for " + p.Date.Format("Mon Jan 2")))
	b.WriteString("\n")
	b.WriteString(Dim("window " + p.Window.WindowStart.String() + "–" + p.Window.WindowEnd.String()))
	b.WriteString("\n\n")

	if p.Message != "" {
		b.WriteString(StyleHoney.Render(p.Message) + "\n")
		return b.String()
	}
	if len(p.Schedule) == 0 {
		b.WriteString(Dim("Nothing fits in today's window.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(p.Schedule))
	for _, e := range p.Schedule {
		when := e.Start.String() + "–" + e.End.String()
		switch e.Kind {
		case planner.KindEvent:
			rows = append(rows, []string{Dim(when), Dim("event"), Dim(e.Title)})
		default:
			id := ""
			if e.Task != nil {
				id = " " + TruncID(e.Task.ID)
			}
			rows = append(rows, []string{when, StyleHoney.Render("⬢ focus"), e.Title + id})
		}
	}
	b.WriteString(RenderTable([]string{"TIME", "KIND", "WHAT"}, rows))
	b.WriteString("\n" + Dim(pluralCells(planner.FocusCount(p.Schedule))+" planned") + "\n")
	return b.String()
}

func pluralCells(n int) string {
	if n == 1 {
		return "1 cell"
	}
	return itoa(n) + " cells"
}
