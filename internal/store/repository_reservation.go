package store

import (
	"context"
	"fmt"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/models"
)

// reservationRepository is the PostgreSQL-backed implementation of
// [ReservationRepository]. All statements are single-table and atomic, so
// no explicit transactions are used.
type reservationRepository struct {
	*DB
	logger *logger.Logger
}

// NewReservationRepository constructs a [ReservationRepository] backed by
// the provided database connection and logger.
func NewReservationRepository(db *DB, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("ReservationRepository created")
	return &reservationRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts a reservation owned by reservation.UserID and returns the
// persisted record with its server-assigned id.
func (p *reservationRepository) Save(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReservationQuery(reservation)
	if err != nil {
		log.Err(err).
			Str("func", "reservationRepository.Save").
			Int64("user_id", reservation.UserID).
			Msg("failed to build insert query")
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	var saved models.Reservation
	if scanErr := row.Scan(&saved.ID, &saved.UserID, &saved.Destination, &saved.Price, &saved.TravelDate, &saved.CreatedAt); scanErr != nil {
		log.Err(scanErr).
			Str("func", "reservationRepository.Save").
			Int64("user_id", reservation.UserID).
			Bool("retryable", p.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to insert reservation")
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return saved, nil
}

// GetAllByUser retrieves every reservation owned by the given user, ordered
// by id descending (most recently created first).
//
// Returns an empty slice when no records are found.
func (p *reservationRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReservationsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "reservationRepository.GetAllByUser").
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reservationRepository.GetAllByUser").
			Int64("user_id", userID).
			Bool("retryable", p.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing reservations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Reservation, 0, 16)

	for rows.Next() {
		var item models.Reservation

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Destination,
			&item.Price,
			&item.TravelDate,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reservationRepository.GetAllByUser").
				Int64("user_id", userID).
				Msg("failed to scan reservation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reservationRepository.GetAllByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Delete removes the reservation only when both id and owner match.
// Zero affected rows is a silent no-op: the caller cannot tell "didn't
// exist" from "wasn't yours" from "deleted", which is intentional.
func (p *reservationRepository) Delete(ctx context.Context, reservationID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReservationQuery(reservationID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "reservationRepository.Delete").
			Int64("user_id", userID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reservationRepository.Delete").
			Int64("reservation_id", reservationID).
			Int64("user_id", userID).
			Bool("retryable", p.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Debug().
			Str("func", "reservationRepository.Delete").
			Int64("reservation_id", reservationID).
			Int64("user_id", userID).
			Msg("delete matched no rows")
	}

	return nil
}
