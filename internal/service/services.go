package service

import (
	"github.com/mgallardo/viajero/internal/config"
	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/store"
)

type Services struct {
	AuthService        AuthService
	ReservationService ReservationService
	ContactService     ContactService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ReservationService: NewReservationService(storages.ReservationRepository, logger),
		ContactService:     NewContactService(storages.ContactRepository, logger),
	}
}
