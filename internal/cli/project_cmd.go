package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/contract"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"comb"},
		Short:   "Manage projects (combs)",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectEditCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

// parseTaskSpec reads "title" or "title:cells".
func parseTaskSpec(s string) (contract.NewTaskInput, error) {
	if i := strings.LastIndex(s, ":"); i > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(s[i+1:])); err == nil {
			if n < 1 {
				return contract.NewTaskInput{}, fmt.Errorf("task %q: cells must be at least 1", s)
			}
			return contract.NewTaskInput{Title: strings.TrimSpace(s[:i]), EstimatedCells: n}, nil
		}
	}
	return contract.NewTaskInput{Title: strings.TrimSpace(s)}, nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var color string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a project, optionally with tasks",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			req := contract.CreateProjectRequest{UserID: userID, Title: args[0], Color: color}
			for _, s := range tasks {
				in, err := parseTaskSpec(s)
				if err != nil {
					return err
				}
				req.Tasks = append(req.Tasks, in)
			}

			p, err := app.Projects.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s] with %d task(s)\n",
				p.Project.Title, p.Project.DisplayID(), len(p.Tasks))
			return nil
		}),
	}

	cmd.Flags().StringVar(&color, "color", "", "Hex colour, e.g. #F5B700")
	cmd.Flags().StringArrayVar(&tasks, "task", nil, `Task to add, "title" or "title:cells" (repeatable)`)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			projects, err := app.Projects.List(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		}),
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveProjectID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, userID, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProject(p))
			return nil
		}),
	}
}

func newProjectEditCmd(app *App) *cobra.Command {
	var title, color string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Rename or recolour a project",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveProjectID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			req := contract.UpdateProjectRequest{UserID: userID, ID: id}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("color") {
				req.Color = &color
			}
			if req.Title == nil && req.Color == nil {
				return fmt.Errorf("nothing to change: pass --title or --color")
			}

			p, err := app.Projects.Update(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&color, "color", "", "New hex colour")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a project and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveProjectID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, userID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", id[:min(8, len(id))])
			return nil
		}),
	}
}
