package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/contract"
)

// matchID picks the one id equal to input or, failing that, the one id that
// starts with it. The CLI prints 8-character prefixes, so those are what users type.
func matchID(kind, input string, ids []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, app *App, userID, input string) (string, error) {
	projects, err := app.Projects.List(ctx, userID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.Project.ID)
	}
	return matchID("project", input, ids)
}

func resolveTaskID(ctx context.Context, app *App, userID, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, contract.ListTasksRequest{UserID: userID})
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return matchID("task", input, ids)
}
