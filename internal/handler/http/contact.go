package http

import (
	"encoding/json"
	"net/http"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/utils"
	"github.com/mgallardo/viajero/models"
)

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
		return
	}

	if err := h.services.ContactService.Submit(ctx, message); err != nil {
		log.Err(err).Msg("contact message submission failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error al guardar mensaje"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Enviado"}, http.StatusOK)
}
