package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
)

func itoa(n int) string { return strconv.Itoa(n) }

func FormatStats(s *contract.DailyStats) string {
	pct := 0.0
	if s.Target > 0 {
		pct = float64(s.Completed) / float64(s.Target)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Today      %s  %d/%d cells\n", RenderProgress(pct, 20), s.Completed, s.Target)
	if s.Remaining() == 0 {
		b.WriteString("           " + StyleLeaf.Render("Daily target reached. The hive is proud.") + "\n")
	} else {
		b.WriteString("           " + Dim(pluralCells(s.Remaining())+" to go") + "\n")
	}
	fmt.Fprintf(&b, "Streak     %s\n", streakText(s.Streak))
	fmt.Fprintf(&b, "Nectar     %s\n", StyleHoney.Render(fmt.Sprintf("%d", s.TotalNectar)))
	fmt.Fprintf(&b, "All time   %s\n", pluralCells(s.TotalCells))
	return RenderBox("Hive stats", strings.TrimRight(b.String(), "\n"))
}

func streakText(days int) string {
	switch days {
	case 0:
		return Dim("no streak")
	case 1:
		return StyleHoney.Render("1 day")
	default:
		return StyleHoney.Render(fmt.Sprintf("%d days", days))
	}
}

// FormatReward is printed after a cell is filled.
func FormatReward(r *contract.CompleteSessionResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s +%d nectar (total %d)\n", StyleHoney.Render("⬢ Cell filled!"), r.NectarEarned, r.TotalNectar)
	fmt.Fprintf(&b, "  streak: %s\n", streakText(r.NewStreak))
	if r.Task != nil {
		fmt.Fprintf(&b, "  %s  %s  %s\n", r.Task.Title, RenderComb(r.Task.CompletedCells, r.Task.EstimatedCells), TaskStatusPill(r.Task.Status))
	}
	return b.String()
}

func FormatSettings(s *contract.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Intensity     %s (%d cells a day)\n", IntensityBadge(s.IntensityMode), s.DailyTarget)
	fmt.Fprintf(&b, "Work window   %s–%s", s.WorkStartTime, s.WorkEndTime)
	return RenderBox("Settings", b.String())
}

func FormatSessionList(sessions []*domain.FocusSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No focus sessions in this range.") + "\n"
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		task := Dim("--")
		if s.TaskID != nil {
			task = TruncID(*s.TaskID)
		}
		status := StyleLeaf.Render("✔")
		if !s.Completed {
			status = StyleBerry.Render("✖")
		}
		started := s.StartedAt.In(now.Location())
		rows = append(rows, []string{
			DayLabel(started, now),
			started.Format("15:04"),
			FormatMinutes(s.DurationMin),
			task,
			status,
			"+" + itoa(s.NectarEarned),
		})
	}
	return RenderTable([]string{"DAY", "START", "LENGTH", "TASK", "DONE", "NECTAR"}, rows)
}
