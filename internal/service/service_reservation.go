package service

import (
	"context"
	"fmt"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/store"
	"github.com/mgallardo/viajero/models"
)

// reservationService implements ReservationService on top of a
// ReservationRepository. Ownership scoping happens in the repository queries;
// this layer only checks field presence.
type reservationService struct {
	reservationRepository store.ReservationRepository
	logger                *logger.Logger
}

func NewReservationService(reservationRepository store.ReservationRepository, logger *logger.Logger) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		logger:                logger,
	}
}

// Create persists a new reservation for reservation.UserID.
//
// Destination, Price and TravelDate must all be present; their content is
// free text and is stored verbatim.
func (s *reservationService) Create(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	if reservation.UserID == 0 {
		log.Error().Msg("reservation without owner")
		return models.Reservation{}, ErrNoUserID
	}

	if reservation.Destination == "" || reservation.Price == "" || reservation.TravelDate == "" {
		log.Error().Int64("user_id", reservation.UserID).Msg("incomplete reservation data provided")
		return models.Reservation{}, ErrInvalidDataProvided
	}

	saved, err := s.reservationRepository.Save(ctx, reservation)
	if err != nil {
		log.Err(err).Int64("user_id", reservation.UserID).Msg("reservation save ended with error")
		return models.Reservation{}, fmt.Errorf("reservation save ended with error: %w", err)
	}

	return saved, nil
}

// List returns every reservation owned by userID, most recent first.
func (s *reservationService) List(ctx context.Context, userID int64) ([]models.Reservation, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		log.Error().Msg("reservation listing without owner")
		return nil, ErrNoUserID
	}

	reservations, err := s.reservationRepository.GetAllByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reservation listing ended with error")
		return nil, fmt.Errorf("reservation listing ended with error: %w", err)
	}

	return reservations, nil
}

// Delete removes a reservation when it exists and is owned by userID.
// A non-existent id or someone else's reservation is not an error.
func (s *reservationService) Delete(ctx context.Context, reservationID, userID int64) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		log.Error().Msg("reservation deletion without owner")
		return ErrNoUserID
	}

	if err := s.reservationRepository.Delete(ctx, reservationID, userID); err != nil {
		log.Err(err).
			Int64("reservation_id", reservationID).
			Int64("user_id", userID).
			Msg("reservation deletion ended with error")
		return fmt.Errorf("reservation deletion ended with error: %w", err)
	}

	return nil
}
