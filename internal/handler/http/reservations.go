package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/utils"
	"github.com/mgallardo/viajero/models"
)

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Token inválido"}, http.StatusForbidden)
		return
	}

	var reservation models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
		return
	}
	reservation.UserID = userID

	if _, err := h.services.ReservationService.Create(ctx, reservation); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reservation creation failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error al reservar"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Guardado"}, http.StatusOK)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Token inválido"}, http.StatusForbidden)
		return
	}

	reservations, err := h.services.ReservationService.List(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reservation listing failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error al obtener reservas"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, reservations, http.StatusOK)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Token inválido"}, http.StatusForbidden)
		return
	}

	reservationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric reservation id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
		return
	}

	if err := h.services.ReservationService.Delete(ctx, reservationID, userID); err != nil {
		log.Err(err).
			Int64("reservation_id", reservationID).
			Int64("user_id", userID).
			Msg("reservation deletion failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error al eliminar"}, statusFromError(err))
		return
	}

	// deleting an id that does not exist or is not yours looks identical
	utils.WriteJSON(w, models.MessageResponse{Message: "Eliminado"}, http.StatusOK)
}
