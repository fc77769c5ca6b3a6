// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email}
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "Name, email and password required!", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONMessage(w, "Email already exists!", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		if errors.Is(err, service.ErrNoSigningKey) {
			utils.WriteJSONMessage(w, "Server configuration error", http.StatusInternalServerError)
			return
		}
		utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		User:  models.UserResponse{Name: registeredUser.Name, Email: registeredUser.Email},
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Email and password required!", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "Email and password required!", http.StatusBadRequest)
			return
		// a deliberately identical response for unknown email and wrong
		// password, so login cannot be used to enumerate accounts
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONMessage(w, "Invalid credentials!", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONMessage(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		if errors.Is(err, service.ErrNoSigningKey) {
			utils.WriteJSONMessage(w, "Server configuration error", http.StatusInternalServerError)
			return
		}
		utils.WriteJSONMessage(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		User:  models.UserResponse{Name: foundUser.Name, Email: foundUser.Email},
		Token: token.SignedString,
	}, http.StatusOK)
}

// logout is a stateless confirmation: no server-side session exists and
// issued tokens stay valid until their natural expiry.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONMessage(w, "Logged out successfully!", http.StatusOK)
}
