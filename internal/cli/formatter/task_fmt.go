package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
)

func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with: hive task add \"title\"") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Title,
			TaskStatusPill(t.Status),
			RenderComb(t.CompletedCells, t.EstimatedCells),
		})
	}
	return RenderTable([]string{"ID", "TASK", "STATUS", "CELLS"}, rows)
}

func FormatProjectList(projects []contract.ProjectWithTasks) string {
	if len(projects) == 0 {
		return Dim("No combs yet. Start one with: hive project add \"title\"") + "\n"
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		done, total := 0, 0
		for _, t := range p.Tasks {
			done += min(t.CompletedCells, t.EstimatedCells)
			total += t.EstimatedCells
		}
		rows = append(rows, []string{
			TruncID(p.Project.ID),
			Swatch(p.Project.Color) + " " + p.Project.Title,
			fmt.Sprintf("%d", len(p.Tasks)),
			RenderComb(done, total),
		})
	}
	return RenderTable([]string{"ID", "COMB", "TASKS", "CELLS"}, rows)
}

// FormatProject shows one comb with its tasks underneath.
func FormatProject(p *contract.ProjectWithTasks) string {
	var b strings.Builder
	b.WriteString(Swatch(p.Project.Color) + " " + Bold(p.Project.Title) + "  " + TruncID(p.Project.ID) + "\n\n")
	b.WriteString(FormatTaskList(p.Tasks))
	return b.String()
}
