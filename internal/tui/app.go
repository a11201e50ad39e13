package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgallardo/viajero/internal/adapter"
)

type screen int

const (
	screenAuth screen = iota
	screenTrips
	screenTripForm
	screenContact
)

// appModel is the root model. It owns screen navigation and the session
// state; the per-screen models own their inputs and server commands.
type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	currentScreen screen
	auth          authModel
	trips         tripsModel
	tripForm      tripFormModel
	contact       contactModel

	username   string
	quitByUser bool
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		currentScreen: screenAuth,
		auth:          newAuthModel(ctx, server),
		trips:         newTripsModel(ctx, server),
		tripForm:      newTripFormModel(ctx, server),
		contact:       newContactModel(ctx, server),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.auth.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

		switch m.currentScreen {
		case screenTrips:
			switch {
			case key.Matches(msg, keys.quit):
				m.quitByUser = true
				return m, tea.Quit
			case key.Matches(msg, keys.logout):
				m.server.SetToken("")
				m.username = ""
				m.auth = newAuthModel(m.ctx, m.server)
				m.currentScreen = screenAuth
				return m, m.auth.Init()
			case key.Matches(msg, keys.newItem):
				m.tripForm.reset()
				m.currentScreen = screenTripForm
				return m, nil
			case key.Matches(msg, keys.contact):
				m.currentScreen = screenContact
				return m, nil
			}
		case screenTripForm, screenContact:
			if key.Matches(msg, keys.esc) {
				m.currentScreen = screenTrips
				m.trips.loading = true
				return m, m.trips.cmdLoad()
			}
		}

	case loginDoneMsg:
		if msg.err == nil {
			m.username = msg.username
			m.currentScreen = screenTrips
			m.trips = newTripsModel(m.ctx, m.server)
			return m, m.trips.cmdLoad()
		}

	case reservationSavedMsg:
		if msg.err == nil {
			m.currentScreen = screenTrips
			m.trips.loading = true
			return m, m.trips.cmdLoad()
		}
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenAuth:
		m.auth, cmd = m.auth.update(msg)
	case screenTrips:
		m.trips, cmd = m.trips.update(msg)
	case screenTripForm:
		m.tripForm, cmd = m.tripForm.update(msg)
	case screenContact:
		m.contact, cmd = m.contact.update(msg)
	}

	return m, cmd
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenAuth:
		return m.auth.View()
	case screenTrips:
		return m.trips.View()
	case screenTripForm:
		return m.tripForm.View()
	case screenContact:
		return m.contact.View()
	}
	return ""
}
