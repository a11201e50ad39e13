package service

import (
	"context"
	"fmt"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/store"
	"github.com/mgallardo/viajero/models"
)

// contactService stores contact-form messages. Messages are written once and
// never read back through the API, so the service is a thin pass-through over
// the repository.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// Submit persists a contact-form message as-is. The intake is a sink: empty
// fields are stored, not rejected. Returns a wrapped storage error if
// persistence fails.
func (s *contactService) Submit(ctx context.Context, message models.ContactMessage) error {
	log := logger.FromContext(ctx)

	if err := s.contactRepository.Save(ctx, message); err != nil {
		log.Err(err).Str("name", message.Name).Msg("contact message save ended with error")
		return fmt.Errorf("contact message save ended with error: %w", err)
	}

	log.Info().Str("name", message.Name).Msg("contact message received")
	return nil
}
