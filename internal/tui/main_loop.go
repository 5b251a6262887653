package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gestoria-mays/enrique/internal/service"
	"github.com/gestoria-mays/enrique/models"
)

type mainMode int

const (
	modeConversations mainMode = iota
	modeNewConversation
	modeChat
	modeDocuments
	modeUpload
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	session  *service.Session

	mode mainMode

	convNames []string
	convIdx   int

	nameInput textinput.Model

	chatInput textinput.Model
	thinking  bool
	spinner   spinner.Model

	documents   []models.Document
	docIdx      int
	docsLoading bool

	uploadName    textinput.Model
	uploadURL     textinput.Model
	uploadContent textarea.Model
	uploadFocus   int
	uploadMode    models.IndexingMode
	uploadSaving  bool

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, session *service.Session) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	nameInput := textinput.New()
	nameInput.Placeholder = "conversation name"
	nameInput.CharLimit = 60
	nameInput.Width = 40

	chatInput := textinput.New()
	chatInput.Placeholder = "Escribe tu pregunta..."
	chatInput.CharLimit = 500
	chatInput.Width = 60

	m := mainLoopModel{
		ctx:        ctx,
		services:   services,
		session:    session,
		spinner:    s,
		nameInput:  nameInput,
		chatInput:  chatInput,
		uploadMode: models.ModeFast,
	}
	m.refreshConvNames()
	return m
}

func (m *mainLoopModel) refreshConvNames() {
	names := make([]string, 0, len(m.session.Conversations))
	for name := range m.session.Conversations {
		names = append(names, name)
	}
	sort.Strings(names)
	m.convNames = names

	if m.convIdx >= len(m.convNames) {
		m.convIdx = len(m.convNames) - 1
	}
	if m.convIdx < 0 {
		m.convIdx = 0
	}
}

func (m mainLoopModel) currentConvName() (string, bool) {
	if len(m.convNames) == 0 || m.convIdx < 0 || m.convIdx >= len(m.convNames) {
		return "", false
	}
	return m.convNames[m.convIdx], true
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case askDoneMsg:
		m.thinking = false
		if msg.err != nil {
			m.errMsg = humanizeRemoteError(msg.err)
			return m, nil
		}
		// The update loop is the only writer of the session, so the reply is
		// appended here rather than inside the command.
		if err := m.services.Append(m.ctx, m.session, models.RoleAssistant, msg.reply); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	case documentsLoadedMsg:
		m.docsLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.documents = msg.docs
		if m.docIdx >= len(m.documents) {
			m.docIdx = len(m.documents) - 1
		}
		if m.docIdx < 0 {
			m.docIdx = 0
		}
		return m, nil
	case uploadDoneMsg:
		m.uploadSaving = false
		if msg.err != nil {
			m.errMsg = humanizeRemoteError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Document %q submitted for indexing", msg.doc.Name)
		m.errMsg = ""
		m.mode = modeDocuments
		m.docsLoading = true
		return m, m.cmdLoadDocuments()
	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeConversations:
		return m.updateConversations(msg)
	case modeNewConversation:
		return m.updateNewConversation(msg)
	case modeChat:
		return m.updateChat(msg)
	case modeDocuments:
		return m.updateDocuments(msg)
	case modeUpload:
		return m.updateUpload(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateConversations(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.convIdx > 0 {
			m.convIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.convIdx < len(m.convNames)-1 {
			m.convIdx++
		}
	case key.Matches(keyMsg, keys.newConv):
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.errMsg = ""
		m.mode = modeNewConversation
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.documents):
		m.mode = modeDocuments
		m.docsLoading = true
		m.errMsg = ""
		return m, m.cmdLoadDocuments()
	case key.Matches(keyMsg, keys.enter):
		name, ok := m.currentConvName()
		if !ok {
			m.status = "No conversations yet"
			return m, nil
		}
		if _, err := m.services.Select(m.ctx, m.session, name); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.chatInput.SetValue("")
		m.chatInput.Focus()
		m.mode = modeChat
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateNewConversation(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			m.mode = modeConversations
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if _, err := m.services.Create(m.ctx, m.session, name); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.refreshConvNames()
			m.errMsg = ""
			m.status = ""
			m.chatInput.SetValue("")
			m.chatInput.Focus()
			m.mode = modeChat
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			m.mode = modeConversations
			return m, nil
		case key.Matches(keyMsg, keys.copyReply):
			reply, ok := m.lastReply()
			if !ok {
				m.status = "Nothing to copy"
				return m, nil
			}
			if err := clipboard.WriteAll(reply); err != nil {
				m.errMsg = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = "Reply copied"
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.thinking {
				return m, nil
			}
			query := strings.TrimSpace(m.chatInput.Value())
			if query == "" {
				return m, nil
			}

			// Snapshot the history before the user turn lands: the query is
			// passed to the pipeline separately, and the command goroutine
			// must not share slices with the session it runs next to.
			conversation, _ := m.session.ActiveConversation()
			history := append([]models.Message(nil), conversation...)

			if err := m.services.Append(m.ctx, m.session, models.RoleUser, query); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.chatInput.SetValue("")
			m.status = ""
			m.errMsg = ""
			m.thinking = true
			return m, tea.Batch(m.spinner.Tick, m.cmdAsk(history, query))
		}
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateDocuments(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.mode = modeConversations
	case key.Matches(keyMsg, keys.up):
		if m.docIdx > 0 {
			m.docIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.docIdx < len(m.documents)-1 {
			m.docIdx++
		}
	case key.Matches(keyMsg, keys.upload):
		m.startUpload()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *mainLoopModel) startUpload() {
	m.uploadName = textinput.New()
	m.uploadName.Placeholder = "name (optional for URL uploads)"
	m.uploadName.Width = 50
	m.uploadName.Focus()

	m.uploadURL = textinput.New()
	m.uploadURL.Placeholder = "https://..."
	m.uploadURL.Width = 50

	m.uploadContent = textarea.New()
	m.uploadContent.Placeholder = "...or paste raw text instead of a URL"
	m.uploadContent.SetWidth(54)
	m.uploadContent.SetHeight(5)

	m.uploadFocus = 0
	m.uploadMode = models.ModeFast
	m.errMsg = ""
	m.mode = modeUpload
}

func (m mainLoopModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			m.mode = modeDocuments
			return m, nil
		case keyMsg.String() == "tab":
			m.uploadFocusNext()
			return m, nil
		case keyMsg.String() == "shift+tab":
			m.uploadFocusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			if m.uploadMode == models.ModeFast {
				m.uploadMode = models.ModeAccurate
			} else {
				m.uploadMode = models.ModeFast
			}
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.uploadSaving {
				return m, nil
			}

			name := strings.TrimSpace(m.uploadName.Value())
			url := strings.TrimSpace(m.uploadURL.Value())
			content := strings.TrimSpace(m.uploadContent.Value())

			if url == "" && content == "" {
				m.errMsg = "Either a URL or raw content is required"
				return m, nil
			}
			if url != "" && content != "" {
				m.errMsg = "Provide a URL or raw content, not both"
				return m, nil
			}
			if content != "" && name == "" {
				m.errMsg = "Raw content needs a name"
				return m, nil
			}

			m.errMsg = ""
			m.uploadSaving = true
			return m, m.cmdUpload(models.UploadRequest{
				Mode:    m.uploadMode,
				Name:    name,
				URL:     url,
				Content: content,
			})
		}
	}

	var cmd tea.Cmd
	switch m.uploadFocus {
	case 0:
		m.uploadName, cmd = m.uploadName.Update(msg)
	case 1:
		m.uploadURL, cmd = m.uploadURL.Update(msg)
	case 2:
		m.uploadContent, cmd = m.uploadContent.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) uploadFocusNext() {
	m.uploadBlurAll()
	m.uploadFocus = (m.uploadFocus + 1) % 3
	m.uploadFocusActive()
}

func (m *mainLoopModel) uploadFocusPrev() {
	m.uploadBlurAll()
	m.uploadFocus = (m.uploadFocus + 2) % 3
	m.uploadFocusActive()
}

func (m *mainLoopModel) uploadBlurAll() {
	m.uploadName.Blur()
	m.uploadURL.Blur()
	m.uploadContent.Blur()
}

func (m *mainLoopModel) uploadFocusActive() {
	switch m.uploadFocus {
	case 0:
		m.uploadName.Focus()
	case 1:
		m.uploadURL.Focus()
	case 2:
		m.uploadContent.Focus()
	}
}

func (m mainLoopModel) lastReply() (string, bool) {
	conversation, ok := m.session.ActiveConversation()
	if !ok {
		return "", false
	}
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == models.RoleAssistant {
			return conversation[i].Content, true
		}
	}
	return "", false
}

// cmdAsk runs only the remote phase of the turn. It closes over a private
// history copy and never touches the session, which stays owned by the
// update goroutine.
func (m mainLoopModel) cmdAsk(history []models.Message, query string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		reply, err := services.Answer(ctx, history, query)
		return askDoneMsg{reply: reply, err: err}
	}
}

func (m mainLoopModel) cmdLoadDocuments() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		docs, err := services.ListDocuments(ctx)
		return documentsLoadedMsg{docs: docs, err: err}
	}
}

func (m mainLoopModel) cmdUpload(req models.UploadRequest) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		doc, err := services.UploadDocument(ctx, req)
		return uploadDoneMsg{doc: doc, err: err}
	}
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeNewConversation:
		return m.viewNewConversation()
	case modeChat:
		return m.viewChat()
	case modeDocuments:
		return m.viewDocuments()
	case modeUpload:
		return m.viewUpload()
	default:
		return m.viewConversations()
	}
}

func (m mainLoopModel) viewConversations() string {
	var b strings.Builder

	if len(m.convNames) == 0 {
		b.WriteString("No conversations yet. Press n to start one.\n")
	} else {
		for i, name := range m.convNames {
			cursor := "  "
			if i == m.convIdx {
				cursor = "> "
			}
			turns := len(m.session.Conversations[name])
			b.WriteString(fmt.Sprintf("%s%s (%d messages)\n", cursor, name, turns))
		}
	}

	b.WriteString(m.statusLines())

	return renderPage(
		"CONVERSATIONS — "+m.session.Username,
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: documents │ l: logout │ q: quit",
	)
}

func (m mainLoopModel) viewNewConversation() string {
	var b strings.Builder
	b.WriteString("Name │ [")
	b.WriteString(m.nameInput.View())
	b.WriteString("]\n")
	b.WriteString(m.statusLines())

	return renderPage("NEW CONVERSATION", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: create")
}

func (m mainLoopModel) viewChat() string {
	var b strings.Builder

	conversation, _ := m.session.ActiveConversation()
	if len(conversation) == 0 {
		b.WriteString(helpStyle.Render("Empty conversation. Ask away."))
		b.WriteString("\n")
	}
	for _, message := range conversation {
		switch message.Role {
		case models.RoleUser:
			b.WriteString(userStyle.Render("Tú:"))
		default:
			b.WriteString(titleStyle.Render("Enrique:"))
		}
		b.WriteString(" ")
		b.WriteString(message.Content)
		b.WriteString("\n\n")
	}

	if m.thinking {
		b.WriteString(m.spinner.View())
		b.WriteString(" Enrique está pensando...\n\n")
	}

	b.WriteString("> ")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(m.statusLines())

	return renderPage(
		"CHAT — "+m.session.Active,
		strings.TrimRight(b.String(), "\n"),
		"enter: send │ ctrl+y: copy reply │ esc: back",
	)
}

func (m mainLoopModel) viewDocuments() string {
	var b strings.Builder

	if m.docsLoading {
		b.WriteString("Loading...\n")
	} else if len(m.documents) == 0 {
		b.WriteString("No documents registered. Press u to upload one.\n")
	} else {
		for i, doc := range m.documents {
			cursor := "  "
			if i == m.docIdx {
				cursor = "> "
			}
			source := doc.URL
			if source == "" {
				source = "raw content"
			}
			b.WriteString(fmt.Sprintf("%s%s [%s] %s\n", cursor, fitText(doc.Name, 30), doc.Mode, fitText(source, 40)))
		}
	}

	b.WriteString(m.statusLines())

	return renderPage("DOCUMENTS", strings.TrimRight(b.String(), "\n"), "u: upload │ ↑/↓: navigate │ esc: back")
}

func (m mainLoopModel) viewUpload() string {
	var b strings.Builder
	b.WriteString("Name    │ [")
	b.WriteString(m.uploadName.View())
	b.WriteString("]\n")
	b.WriteString("URL     │ [")
	b.WriteString(m.uploadURL.View())
	b.WriteString("]\n")
	b.WriteString("Content │\n")
	b.WriteString(m.uploadContent.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Mode    │ %s\n", m.uploadMode))

	if m.uploadSaving {
		b.WriteString("\n[Uploading...]\n")
	} else {
		b.WriteString("\n[Upload]\n")
	}
	b.WriteString(m.statusLines())

	return renderPage(
		"UPLOAD DOCUMENT",
		strings.TrimRight(b.String(), "\n"),
		"ctrl+s: submit │ ctrl+f: fast/accurate │ tab: next field │ esc: back",
	)
}

func (m mainLoopModel) statusLines() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	return b.String()
}
