// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user found in request context")
		utils.WriteJSONMessage(w, "Not authorized!", http.StatusUnauthorized)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("contacts listing failed")
		utils.WriteJSONMessage(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user found in request context")
		utils.WriteJSONMessage(w, "Not authorized!", http.StatusUnauthorized)
		return
	}

	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	contact := models.Contact{Name: req.Name, Number: req.Number, UserID: user.UserID}
	createdContact, err := h.services.ContactService.AddContact(ctx, contact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid contact data provided")
			utils.WriteJSONMessage(w, "Name and number required!", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("contact creation failed")
			utils.WriteJSONMessage(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, createdContact, http.StatusCreated)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user found in request context")
		utils.WriteJSONMessage(w, "Not authorized!", http.StatusUnauthorized)
		return
	}

	// a non-numeric id cannot match any contact
	contactID, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		log.Err(err).Str("contactID", chi.URLParam(r, "contactID")).Msg("non-numeric contact id")
		utils.WriteJSONMessage(w, "Contact not found!", http.StatusNotFound)
		return
	}

	deletedID, err := h.services.ContactService.DeleteContact(ctx, contactID, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrContactNotFound):
			log.Err(err).Int64("contact_id", contactID).Msg("contact not found")
			utils.WriteJSONMessage(w, "Contact not found!", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("contact_id", contactID).Msg("contact deletion failed")
			utils.WriteJSONMessage(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.DeleteContactResponse{ID: deletedID}, http.StatusOK)
}
