// Package tui implements the interactive terminal client.
//
// It is a thin Bubble Tea front end over [adapter.ServerAdapter]: an auth
// screen (login or register), a reservations screen with create and delete,
// and a contact form. All server calls run as asynchronous tea commands so
// the interface never blocks on the network.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgallardo/viajero/internal/adapter"
	"github.com/mgallardo/viajero/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run starts the interactive session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
