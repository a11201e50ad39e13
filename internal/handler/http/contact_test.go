package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/service"
	"github.com/mgallardo/viajero/internal/store"
	"github.com/mgallardo/viajero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactService struct {
	submitFn func(ctx context.Context, message models.ContactMessage) error
}

func (m *mockContactService) Submit(ctx context.Context, message models.ContactMessage) error {
	return m.submitFn(ctx, message)
}

func newHandlerWithContact(t *testing.T, contact service.ContactService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ContactService: contact,
	}
	return NewHandler(svcs, logger.Nop())
}

func TestContact_Success(t *testing.T) {
	var received models.ContactMessage
	svc := &mockContactService{
		submitFn: func(_ context.Context, message models.ContactMessage) error {
			received = message
			return nil
		},
	}

	h := newHandlerWithContact(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/contacto",
		strings.NewReader(`{"nombre":"Ana","email":"ana@x.com","mensaje":"Hola"}`))
	rec := httptest.NewRecorder()

	h.contact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enviado")
	assert.Equal(t, "Ana", received.Name)
	assert.Equal(t, "Hola", received.Message)
}

func TestContact_InvalidJSON(t *testing.T) {
	h := newHandlerWithContact(t, &mockContactService{})
	req := httptest.NewRequest(http.MethodPost, "/api/contacto", strings.NewReader("nope"))
	rec := httptest.NewRecorder()

	h.contact(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContact_EmptyFieldsAreAccepted(t *testing.T) {
	var received models.ContactMessage
	svc := &mockContactService{
		submitFn: func(_ context.Context, message models.ContactMessage) error {
			received = message
			return nil
		},
	}

	h := newHandlerWithContact(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/contacto",
		strings.NewReader(`{"nombre":"","email":"a@b.c","mensaje":"hola"}`))
	rec := httptest.NewRecorder()

	h.contact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enviado")
	assert.Empty(t, received.Name)
	assert.Equal(t, "hola", received.Message)
}

func TestContact_StorageError(t *testing.T) {
	svc := &mockContactService{
		submitFn: func(_ context.Context, _ models.ContactMessage) error {
			return store.ErrMessageNotSaved
		},
	}

	h := newHandlerWithContact(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/contacto",
		strings.NewReader(`{"nombre":"Ana","email":"ana@x.com","mensaje":"Hola"}`))
	rec := httptest.NewRecorder()

	h.contact(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al guardar mensaje")
}
