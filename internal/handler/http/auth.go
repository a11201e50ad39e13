package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mgallardo/viajero/internal/logger"
	"github.com/mgallardo/viajero/internal/service"
	"github.com/mgallardo/viajero/internal/store"
	"github.com/mgallardo/viajero/internal/utils"
	"github.com/mgallardo/viajero/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "El usuario ya existe"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Error al registrar"}, statusFromError(err))
			return
		}
	}

	// no auto-login: the caller must hit /auth/login to obtain a token
	utils.WriteJSON(w, models.MessageResponse{Message: "Usuario creado"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Datos inválidos"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			// a single generic rejection: do not reveal whether the username exists
			log.Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Usuario o contraseña incorrectos"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Error al iniciar sesión"}, statusFromError(err))
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error al iniciar sesión"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		Username: foundUser.Username,
	}, http.StatusOK)
}
