package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var cells int
	var project string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			req := contract.CreateTaskRequest{UserID: userID, Title: args[0], EstimatedCells: cells}
			if project != "" {
				pid, err := resolveProjectID(ctx, app, userID, project)
				if err != nil {
					return err
				}
				req.ProjectID = &pid
			}

			t, err := app.Tasks.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s] (%d cells)\n", t.Title, t.ID[:8], t.EstimatedCells)
			return nil
		}),
	}

	cmd.Flags().IntVar(&cells, "cells", 1, "Estimated focus cells")
	cmd.Flags().StringVar(&project, "project", "", "Project ID or prefix")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var status, project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			req := contract.ListTasksRequest{UserID: userID}
			if status != "" {
				st := domain.TaskStatus(strings.ToUpper(status))
				req.Status = &st
			}
			if project != "" {
				pid, err := resolveProjectID(ctx, app, userID, project)
				if err != nil {
					return err
				}
				req.ProjectID = &pid
			}

			tasks, err := app.Tasks.List(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		}),
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (todo, in_progress, done, archived)")
	cmd.Flags().StringVar(&project, "project", "", "Filter by project ID or prefix")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, status string
	var cells, completed int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveTaskID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			req := contract.UpdateTaskRequest{UserID: userID, ID: id}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("cells") {
				req.EstimatedCells = &cells
			}
			if flags.Changed("completed") {
				req.CompletedCells = &completed
			}
			if flags.Changed("status") {
				st := domain.TaskStatus(strings.ToUpper(status))
				req.Status = &st
			}
			if req.Title == nil && req.EstimatedCells == nil && req.CompletedCells == nil && req.Status == nil {
				return fmt.Errorf("nothing to change: pass --title, --cells, --completed or --status")
			}
			return updateTask(ctx, cmd, app, req)
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVar(&cells, "cells", 0, "New estimate in cells")
	cmd.Flags().IntVar(&completed, "completed", 0, "Completed cells")
	cmd.Flags().StringVar(&status, "status", "", "New status (todo, in_progress, done, archived)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveTaskID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			done := domain.TaskDone
			return updateTask(ctx, cmd, app, contract.UpdateTaskRequest{UserID: userID, ID: id, Status: &done})
		}),
	}
}

func updateTask(ctx context.Context, cmd *cobra.Command, app *App, req contract.UpdateTaskRequest) error {
	t, err := app.Tasks.Update(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s  %s  %s\n",
		t.Title, formatter.RenderComb(t.CompletedCells, t.EstimatedCells), formatter.TaskStatusPill(t.Status))
	return nil
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			id, err := resolveTaskID(ctx, app, userID, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, userID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", id[:8])
			return nil
		}),
	}
}
