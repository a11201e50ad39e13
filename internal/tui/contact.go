package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgallardo/viajero/internal/adapter"
	"github.com/mgallardo/viajero/models"
)

// contactModel is the contact form. It posts to the open contact route, so
// it works the same whether or not the user is logged in.
type contactModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func newContactModel(ctx context.Context, server adapter.ServerAdapter) contactModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "nombre"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40

	messageInput := textinput.New()
	messageInput.Placeholder = "mensaje"
	messageInput.CharLimit = 500
	messageInput.Width = 40

	return contactModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{nameInput, emailInput, messageInput},
	}
}

func (m contactModel) update(msg tea.Msg) (contactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Enviado"
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			message := strings.TrimSpace(m.inputs[2].Value())
			if name == "" || email == "" || message == "" {
				m.errMsg = "Todos los campos son obligatorios"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSend(name, email, message)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m contactModel) View() string {
	var b strings.Builder
	b.WriteString("Nombre  [" + m.inputs[0].View() + "]\n")
	b.WriteString("Email   [" + m.inputs[1].View() + "]\n")
	b.WriteString("Mensaje [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Enviar...]\n")
	} else {
		b.WriteString("\n[Enviar]\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("CONTACTO", strings.TrimRight(b.String(), "\n"),
		"esc: volver │ tab: siguiente campo │ enter: enviar")
}

func (m *contactModel) cmdSend(name, email, message string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.SubmitContact(ctx, models.ContactMessage{
			Name:    name,
			Email:   email,
			Message: message,
		})
		return contactSentMsg{err: err}
	}
}

func (m *contactModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *contactModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
