package store

import (
	"context"
	"fmt"

	"github.com/mgallardo/viajero/internal/config"
	"github.com/mgallardo/viajero/internal/logger"
)

// Storages aggregates every repository the application uses. All
// repositories share one bounded connection pool.
type Storages struct {
	UserRepository        UserRepository
	ReservationRepository ReservationRepository
	ContactRepository     ContactRepository
}

// NewStorages connects to PostgreSQL, applies the embedded migrations, and
// constructs all repositories on top of the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		ReservationRepository: NewReservationRepository(db, log),
		ContactRepository:     NewContactRepository(db, log),
	}, nil
}
