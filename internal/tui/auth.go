// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Gallardo

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgallardo/viajero/internal/adapter"
	"github.com/mgallardo/viajero/models"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeRegister
)

// authModel is the Bubble Tea model for the authentication screen. It renders
// text inputs for username, email (register mode only) and password, and
// dispatches an async login or register command on form submission.
//
// Registration is an explicit two-step flow: after a successful register the
// model switches back to login mode with a status message, it never logs the
// user in automatically.
type authModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func newAuthModel(ctx context.Context, server adapter.ServerAdapter) authModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "usuario"
	usernameInput.CharLimit = 40
	usernameInput.Width = 40
	usernameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "contraseña"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return authModel{
		ctx:    ctx,
		server: server,
		mode:   authModeLogin,
		inputs: []textinput.Model{usernameInput, emailInput, passwordInput},
	}
}

func (m authModel) Init() tea.Cmd {
	return textinput.Blink
}

// activeInputs returns the indexes of the inputs visible in the current mode.
// The email input only participates in register mode.
func (m authModel) activeInputs() []int {
	if m.mode == authModeRegister {
		return []int{0, 1, 2}
	}
	return []int{0, 2}
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.mode = authModeLogin
		m.errMsg = ""
		m.status = "Usuario creado, inicia sesión"
		m.resetFocus()
		return m, nil

	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			m.mode = 1 - m.mode
			m.errMsg = ""
			m.status = ""
			m.resetFocus()
			return m, nil
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

			username := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			password := m.inputs[2].Value()

			if username == "" || password == "" || (m.mode == authModeRegister && email == "") {
				m.errMsg = "Todos los campos son obligatorios"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			if m.mode == authModeRegister {
				return m, m.cmdRegister(username, email, password)
			}
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authModel) View() string {
	var b strings.Builder

	b.WriteString("Usuario    [" + m.inputs[0].View() + "]\n")
	if m.mode == authModeRegister {
		b.WriteString("Email      [" + m.inputs[1].View() + "]\n")
	}
	b.WriteString("Contraseña [" + m.inputs[2].View() + "]\n")

	label := "[Entrar]"
	if m.mode == authModeRegister {
		label = "[Registrarse]"
	}
	if m.submitting {
		label += " ..."
	}
	b.WriteString("\n" + label + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "INICIAR SESIÓN"
	if m.mode == authModeRegister {
		title = "CREAR CUENTA"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"ctrl+r: cambiar modo │ tab: siguiente campo │ enter: enviar │ ctrl+c: salir")
}

func (m *authModel) cmdRegister(username, email, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.Register(ctx, models.User{
			Username: username,
			Email:    email,
			Password: password,
		})
		return registerDoneMsg{err: err}
	}
}

func (m *authModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		login, err := server.Login(ctx, models.User{
			Username: username,
			Password: password,
		})
		return loginDoneMsg{username: login.Username, err: err}
	}
}

func (m *authModel) resetFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *authModel) focusNext() {
	active := m.activeInputs()
	m.inputs[m.focus].Blur()
	for i, idx := range active {
		if idx == m.focus {
			m.focus = active[(i+1)%len(active)]
			break
		}
	}
	m.inputs[m.focus].Focus()
}

func (m *authModel) focusPrev() {
	active := m.activeInputs()
	m.inputs[m.focus].Blur()
	for i, idx := range active {
		if idx == m.focus {
			m.focus = active[(i-1+len(active))%len(active)]
			break
		}
	}
	m.inputs[m.focus].Focus()
}
