package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gestoria-mays/enrique/internal/service"
)

// GateModel asks for the site-wide passphrase before exposing the menu. It
// is only registered as the start page when the gate is enabled.
type GateModel struct {
	gate service.SiteGate

	input  textinput.Model
	errMsg string
}

func NewGateModel(gate service.SiteGate) *GateModel {
	input := textinput.New()
	input.Placeholder = "contraseña"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &GateModel{
		gate:  gate,
		input: input,
	}
}

func (m *GateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *GateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if err := m.gate.Verify(m.input.Value()); err != nil {
			m.errMsg = "Wrong password"
			m.input.SetValue("")
			return m, nil
		}

		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GateModel) View() string {
	var b strings.Builder
	b.WriteString("Escribe tu contraseña\n\n")
	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ACCESS", strings.TrimRight(b.String(), "\n"), "enter: submit")
}
