package service

import (
	"context"
	"testing"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactRepository struct {
	saveFn func(ctx context.Context, message models.ContactMessage) error
}

func (m *mockContactRepository) Save(ctx context.Context, message models.ContactMessage) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, message)
	}
	return nil
}

func newTestContactService(repo *mockContactRepository) ContactService {
	return NewContactService(repo, logger.Nop())
}

func TestContactService_Submit_Success(t *testing.T) {
	var saved models.ContactMessage
	repo := &mockContactRepository{
		saveFn: func(_ context.Context, message models.ContactMessage) error {
			saved = message
			return nil
		},
	}
	svc := newTestContactService(repo)

	err := svc.Submit(context.Background(), models.ContactMessage{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hola, tengo una consulta",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", saved.Name)
	assert.Equal(t, "Hola, tengo una consulta", saved.Message)
}

func TestContactService_Submit_EmptyFieldsReachRepository(t *testing.T) {
	tests := []struct {
		name    string
		message models.ContactMessage
	}{
		{name: "no name", message: models.ContactMessage{Email: "a@x.com", Message: "hola"}},
		{name: "no email", message: models.ContactMessage{Name: "Ana", Message: "hola"}},
		{name: "no message", message: models.ContactMessage{Name: "Ana", Email: "a@x.com"}},
		{name: "all empty", message: models.ContactMessage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved models.ContactMessage
			called := false
			repo := &mockContactRepository{
				saveFn: func(_ context.Context, message models.ContactMessage) error {
					called = true
					saved = message
					return nil
				},
			}
			svc := newTestContactService(repo)

			err := svc.Submit(context.Background(), tt.message)

			require.NoError(t, err)
			assert.True(t, called, "message must reach the repository as-is")
			assert.Equal(t, tt.message, saved)
		})
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	repo := &mockContactRepository{
		saveFn: func(_ context.Context, _ models.ContactMessage) error {
			return errRepository
		},
	}
	svc := newTestContactService(repo)

	err := svc.Submit(context.Background(), models.ContactMessage{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "hola",
	})

	assert.ErrorIs(t, err, errRepository)
}
