package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgallardo/viajero/internal/adapter"
	"github.com/mgallardo/viajero/models"
)

// tripFormModel is the creation form for a new reservation. Destination,
// price and travel date are free-text fields, stored verbatim by the server.
type tripFormModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newTripFormModel(ctx context.Context, server adapter.ServerAdapter) tripFormModel {
	destinationInput := textinput.New()
	destinationInput.Placeholder = "destino"
	destinationInput.CharLimit = 100
	destinationInput.Width = 40
	destinationInput.Focus()

	priceInput := textinput.New()
	priceInput.Placeholder = "precio"
	priceInput.CharLimit = 20
	priceInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "fecha (AAAA-MM-DD)"
	dateInput.CharLimit = 20
	dateInput.Width = 40

	return tripFormModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{destinationInput, priceInput, dateInput},
	}
}

func (m tripFormModel) update(msg tea.Msg) (tripFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reservationSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
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

			destination := strings.TrimSpace(m.inputs[0].Value())
			price := strings.TrimSpace(m.inputs[1].Value())
			travelDate := strings.TrimSpace(m.inputs[2].Value())
			if destination == "" || price == "" || travelDate == "" {
				m.errMsg = "Todos los campos son obligatorios"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(destination, price, travelDate)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m tripFormModel) View() string {
	var b strings.Builder
	b.WriteString("Destino [" + m.inputs[0].View() + "]\n")
	b.WriteString("Precio  [" + m.inputs[1].View() + "]\n")
	b.WriteString("Fecha   [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Guardar...]\n")
	} else {
		b.WriteString("\n[Guardar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("NUEVA RESERVA", strings.TrimRight(b.String(), "\n"),
		"esc: volver │ tab: siguiente campo │ enter: guardar")
}

func (m *tripFormModel) cmdSave(destination, price, travelDate string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.CreateReservation(ctx, models.Reservation{
			Destination: destination,
			Price:       price,
			TravelDate:  travelDate,
		})
		return reservationSavedMsg{err: err}
	}
}

func (m *tripFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
	m.submitting = false
}

func (m *tripFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *tripFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
