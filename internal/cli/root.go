package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/identity"
	"github.com/alexanderramin/hive/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and process hooks the commands run against.
type App struct {
	Users    service.UserService
	Tasks    service.TaskService
	Projects service.ProjectService
	Sessions service.SessionService
	Plan     service.PlanService
	Stats    service.StatsService
	Settings service.SettingsService
	Identity identity.Provider

	// DefaultUser is the account e-mail used when --user is not given.
	DefaultUser string
	// Serve runs the HTTP server until ctx is cancelled.
	Serve func(ctx context.Context) error
	// IsInteractive reports whether stdin and stdout are a terminal.
	IsInteractive func() bool
	Now           func() time.Time

	userEmail string
	// minute is the length of one countdown minute; zero means a real minute.
	minute time.Duration
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) minuteLen() time.Duration {
	if a.minute > 0 {
		return a.minute
	}
	return time.Minute
}

// currentUser resolves the account selected with --user or HIVE_USER.
func (a *App) currentUser(ctx context.Context) (*domain.User, error) {
	if a.userEmail == "" {
		return nil, fmt.Errorf("no user selected: pass --user or set HIVE_USER")
	}
	u, err := a.Users.GetByEmail(ctx, a.userEmail)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", a.userEmail, err)
	}
	return u, nil
}

// NewRootCmd creates the top-level "hive" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "hive",
		Short:         "Gamified focus timer and day planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.userEmail, "user", app.DefaultUser, "Account e-mail (defaults to HIVE_USER)")

	root.AddCommand(
		newServeCmd(app),
		newSignupCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newPlanCmd(app),
		newTimerCmd(app),
		newSessionCmd(app),
		newStatsCmd(app),
		newSettingsCmd(app),
	)

	return root
}
