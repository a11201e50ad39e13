package store

import (
	"context"

	"github.com/mgallardo/viajero/models"
)

// UserRepository persists account records and enforces username uniqueness
// at the storage layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ReservationRepository persists trip bookings scoped to their owner.
// Every read and delete is keyed by the owner id inside the SQL statement
// itself, so ownership is enforced by the query, not by the caller.
type ReservationRepository interface {
	Save(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	GetAllByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
	Delete(ctx context.Context, reservationID, userID int64) error
}

// ContactRepository persists contact messages. It is a write-only sink.
type ContactRepository interface {
	Save(ctx context.Context, message models.ContactMessage) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-level errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
