// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Gallardo

// Package adapter provides transport-layer abstractions for communicating with
// the viajero server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/mgallardo/viajero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the viajero
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// Registration does not log the user in; a separate Login call is needed
	// to obtain a token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken and returns the login response carrying the token
	// and the username.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// CreateReservation persists a new reservation for the authenticated user.
	CreateReservation(ctx context.Context, reservation models.Reservation) error

	// ListReservations fetches every reservation owned by the authenticated
	// user, most recently created first.
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	// DeleteReservation removes the reservation with the given id if it is
	// owned by the authenticated user. Deleting an id that does not exist (or
	// is not yours) succeeds the same way: the server treats it as a no-op.
	DeleteReservation(ctx context.Context, reservationID int64) error

	// SubmitContact sends a contact-form message. No authentication required.
	SubmitContact(ctx context.Context, message models.ContactMessage) error
}
