package tui

import (
	"github.com/mgallardo/viajero/models"
)

type registerDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	username string
	err      error
}

type reservationsLoadedMsg struct {
	items []models.Reservation
	err   error
}

type reservationSavedMsg struct {
	err error
}

type reservationDeletedMsg struct {
	err error
}

type contactSentMsg struct {
	err error
}
