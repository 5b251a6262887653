package client

import (
	"context"
	"errors"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/service"
	"github.com/gestoria-mays/enrique/internal/tui"
)

// App runs the interactive application: the login flow followed by the chat
// loop. Logging out returns to the login flow; quitting exits Run.
type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run blocks until the user quits. A quit from the login screen is a normal
// exit, not an error.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	for {
		session, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().Str("username", session.Username).Str("session_id", session.ID).Msg("session opened")

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("username", session.Username).Msg("user logged out")
	}
}
