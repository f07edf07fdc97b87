package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/hive/internal/cli/formatter"
	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/planner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change intensity and work window",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			s, err := app.Settings.Get(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		}),
	}
}

func newSettingsEditCmd(app *App) *cobra.Command {
	var intensity intensityFlag
	var start, end string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change settings with flags or an interactive form",
		RunE: withUser(app, func(ctx context.Context, cmd *cobra.Command, userID string, args []string) error {
			req := contract.UpdateSettingsRequest{UserID: userID}
			flags := cmd.Flags()
			if flags.Changed("intensity") {
				req.IntensityMode = &intensity.mode
			}
			if flags.Changed("start") {
				req.WorkStartTime = &start
			}
			if flags.Changed("end") {
				req.WorkEndTime = &end
			}

			if req.IntensityMode == nil && req.WorkStartTime == nil && req.WorkEndTime == nil {
				if !app.interactive() {
					return fmt.Errorf("settings edit needs a terminal, or pass --intensity, --start or --end")
				}
				current, err := app.Settings.Get(ctx, userID)
				if err != nil {
					return err
				}
				req, err = runSettingsForm(userID, current)
				if err != nil {
					return err
				}
			}

			s, err := app.Settings.Update(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		}),
	}

	cmd.Flags().Var(&intensity, "intensity", "GLIDER, WORKER_BEE or HERO_MODE")
	cmd.Flags().StringVar(&start, "start", "", "Work window start, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "Work window end, HH:MM")

	return cmd
}

// settingsForm builds the edit form over the given values. Field validation
// mirrors the service so bad input is caught before submit.
func settingsForm(mode *domain.IntensityMode, start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.IntensityMode]().
				Title("Intensity").
				Options(
					huh.NewOption("Glider (4 cells a day)", domain.IntensityGlider),
					huh.NewOption("Worker Bee (8 cells a day)", domain.IntensityWorkerBee),
					huh.NewOption("Hero Mode (12 cells a day)", domain.IntensityHero),
				).
				Value(mode),
			clockInput("Work starts", start),
			clockInput("Work ends", end),
		),
	).WithTheme(hiveHuhTheme()).WithShowHelp(false)
}

func runSettingsForm(userID string, current *contract.Settings) (contract.UpdateSettingsRequest, error) {
	mode := current.IntensityMode
	start, end := current.WorkStartTime, current.WorkEndTime
	if err := settingsForm(&mode, &start, &end).Run(); err != nil {
		return contract.UpdateSettingsRequest{}, err
	}
	return contract.UpdateSettingsRequest{
		UserID:        userID,
		IntensityMode: &mode,
		WorkStartTime: &start,
		WorkEndTime:   &end,
	}, nil
}

func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(func(s string) error {
			_, err := planner.ParseClock(s)
			return err
		})
}

func hiveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHoney)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorLeaf)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHoney)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHoney)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorBerry)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
