package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/service"
	"github.com/gestoria-mays/enrique/models"
)

// ErrUserQuit is returned when the user leaves the program from the login
// flow instead of authenticating.
var ErrUserQuit = errors.New("quit by user")

// TUI owns the two interactive phases of the application: the login flow and
// the main chat loop.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register pages until the user authenticates
// or quits. A successful login returns the opened Session.
func (t *TUI) LoginFlow(ctx context.Context) (*service.Session, error) {
	pages := map[string]tea.Model{
		"gate":     NewGateModel(t.services.SiteGate),
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	startPage := "menu"
	if t.services.SiteGate.Enabled() {
		startPage = "gate"
	}

	root := NewRootModel(pages, startPage, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return nil, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the chat screens for an authenticated session until the user
// quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, session *service.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
