package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	modeFlag := timerModeFlag{mode: domain.TimerCell}
	var minutes int

	cmd := &cobra.Command{
		Use:   "timer [TASK-ID]",
		Short: "Run a focus cell or a break",
		Long:  "Counts down a focus cell (25m), a breather (5m) or a refuel (15m).\nA cell that runs to the end is recorded and pays out nectar.",
		Args:  cobra.MaximumNArgs(1),
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			mode := modeFlag.mode
			if minutes < 0 {
				return fmt.Errorf("minutes must be positive")
			}
			if minutes == 0 {
				minutes = mode.DefaultMinutes()
			}

			var taskID, label string
			var err error
			if len(args) == 1 {
				if mode != domain.TimerCell {
					return fmt.Errorf("only focus cells count toward a task")
				}
				taskID, err = resolveTaskID(ctx, app, userID, args[0])
				if err != nil {
					return err
				}
				t, err := app.Tasks.Get(ctx, userID, taskID)
				if err != nil {
					return err
				}
				label = t.Title
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			started := app.now()
			finished, err := runTimer(ctx, app, cmd.OutOrStdout(), mode, label, minutes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !finished {
				fmt.Fprintln(out, formatter.Dim("Timer stopped. No cell recorded."))
				return nil
			}
			if mode != domain.TimerCell {
				fmt.Fprintln(out, "Break over. Back to the comb!")
				return nil
			}
			return completeCell(ctx, cmd, app, userID, taskID, minutes, started, app.now())
		}),
	}

	cmd.Flags().Var(&modeFlag, "mode", "cell, breather or refuel")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Override the mode's length in minutes")

	return cmd
}

// runTimer reports whether the countdown ran to the end.
func runTimer(ctx context.Context, app *App, out io.Writer, mode domain.TimerMode, label string, minutes int) (bool, error) {
	if !app.interactive() {
		err := plainCountdown(ctx, out, mode, label, minutes, app.minuteLen())
		if errors.Is(err, context.Canceled) {
			return false, nil
		}
		return err == nil, err
	}

	total := time.Duration(minutes) * app.minuteLen()
	p := tea.NewProgram(newTimerModel(mode, label, total), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	m, ok := final.(timerModel)
	return ok && m.finished, nil
}

// plainCountdown prints the time left once a minute. It is used when there is
// no terminal to draw on.
func plainCountdown(ctx context.Context, w io.Writer, mode domain.TimerMode, label string, minutes int, minute time.Duration) error {
	title := timerTitle(mode)
	if label != "" {
		title += ": " + label
	}
	fmt.Fprintf(w, "%s (%s)\n", title, formatter.FormatMinutes(minutes))

	ticker := time.NewTicker(minute)
	defer ticker.Stop()
	for left := minutes; left > 0; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			left--
			if left > 0 {
				fmt.Fprintf(w, "  %s remaining\n", formatter.FormatCountdown(time.Duration(left)*time.Minute))
			}
		}
	}
	fmt.Fprintln(w, "Time's up!")
	return nil
}
