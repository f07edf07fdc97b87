package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Lay out today's focus blocks around fixed events",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			plan, err := app.Plan.Today(ctx, userID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		}),
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's progress, streak and nectar",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			stats, err := app.Stats.Daily(ctx, userID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		}),
	}
}

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and review focus sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var task string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed cell without running the timer",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			var taskID string
			if task != "" {
				id, err := resolveTaskID(ctx, app, userID, task)
				if err != nil {
					return err
				}
				taskID = id
			}
			ended := app.now()
			return completeCell(ctx, cmd, app, userID, taskID, minutes, ended.Add(-time.Duration(minutes)*time.Minute), ended)
		}),
	}

	cmd.Flags().StringVar(&task, "task", "", "Task ID or prefix the cell counts toward")
	cmd.Flags().IntVar(&minutes, "minutes", 25, "Cell length in minutes")

	return cmd
}

// completeCell logs a finished cell and prints the payout.
func completeCell(ctx context.Context, cmd *cobra.Command, app *App, userID, taskID string, minutes int, started, ended time.Time) error {
	req := contract.CompleteSessionRequest{
		UserID:      userID,
		DurationMin: minutes,
		StartedAt:   &started,
		EndedAt:     &ended,
	}
	if taskID != "" {
		req.TaskID = &taskID
	}
	res, err := app.Sessions.Complete(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReward(res))
	return nil
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent focus sessions",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			now := app.now()
			sessions, err := app.Sessions.ListRecent(ctx, userID, days, now)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, now))
			return nil
		}),
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to look, today included")

	return cmd
}
