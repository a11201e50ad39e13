package store

import (
	"context"
	"fmt"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/models"
)

type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("ContactRepository created")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// Save unconditionally inserts the contact message. No dedup, no rate
// limiting; the storage layer's column constraints are the only gate.
func (r *contactRepository) Save(ctx context.Context, message models.ContactMessage) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertContactMessage, message.Name, message.Email, message.Message)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.Save").
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error inserting contact message")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*contactRepository.Save").Msg("contact message was not saved")
		return ErrMessageNotSaved
	}

	return nil
}
