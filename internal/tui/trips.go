package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/mgallardo/viajero/internal/adapter"
	"github.com/mgallardo/viajero/models"
)

// tripsModel renders the authenticated user's reservations, most recent
// first, and drives deletion and refresh.
type tripsModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	items   []models.Reservation
	idx     int
	loading bool
	errMsg  string
	status  string
}

func newTripsModel(ctx context.Context, server adapter.ServerAdapter) tripsModel {
	return tripsModel{
		ctx:     ctx,
		server:  server,
		loading: true,
	}
}

func (m tripsModel) update(msg tea.Msg) (tripsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reservationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case reservationDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Eliminado"
		return m, m.cmdLoad()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			m.status = ""
			return m, m.cmdLoad()
		case key.Matches(msg, keys.delete):
			if len(m.items) == 0 {
				return m, nil
			}
			m.status = ""
			return m, m.cmdDelete(m.items[m.idx].ID)
		}
	}

	return m, nil
}

func (m tripsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Cargando...\n")
	case len(m.items) == 0:
		b.WriteString("No tienes reservas todavía.\n")
	default:
		b.WriteString("  Destino              Precio     Fecha\n")
		b.WriteString("  ─────────────────────────────────────────────\n")
		for i, item := range m.items {
			cursor := "  "
			line := fmt.Sprintf("%-20s %-10s %s", item.Destination, item.Price, item.TravelDate)
			if i == m.idx {
				cursor = "> "
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("MIS VIAJES", strings.TrimRight(b.String(), "\n"),
		"n: nueva reserva │ d: eliminar │ r: actualizar │ c: contacto │ l: salir de la cuenta │ q: salir")
}

func (m *tripsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		items, err := server.ListReservations(ctx)
		return reservationsLoadedMsg{items: items, err: err}
	}
}

func (m *tripsModel) cmdDelete(reservationID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.DeleteReservation(ctx, reservationID)
		return reservationDeletedMsg{err: err}
	}
}
