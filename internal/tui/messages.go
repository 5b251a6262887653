package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gestoria-mays/enrique/internal/service"
	"github.com/gestoria-mays/enrique/models"
)

// NavigateTo switches the RootModel to another page. An optional Payload is
// re-emitted as a message to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async login attempt. A nil Err carries an open
// Session and ends the login flow.
type LoginResult struct {
	Err      error
	Username string
	Session  *service.Session
}

// RegisterResult finishes an async registration attempt.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is delivered to the menu page after a successful
// registration so it can show a confirmation line.
type RegisterSuccessNotice struct {
	Username string
}

type askDoneMsg struct {
	reply string
	err   error
}

type documentsLoadedMsg struct {
	docs []models.Document
	err  error
}

type uploadDoneMsg struct {
	doc models.Document
	err error
}
