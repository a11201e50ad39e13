package service

import (
	"context"

	"github.com/mgallardo/viajero/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ReservationService interface {
	Create(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	List(ctx context.Context, userID int64) ([]models.Reservation, error)
	Delete(ctx context.Context, reservationID, userID int64) error
}

type ContactService interface {
	Submit(ctx context.Context, message models.ContactMessage) error
}
