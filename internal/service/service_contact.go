// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

// contactService is the concrete implementation of ContactService.
// All operations are scoped to the owning user; the service never returns or
// touches another user's contacts.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

// NewContactService constructs a ContactService backed by the given repository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// ListContacts returns all contacts owned by userID, newest first.
// A user with no contacts gets an empty slice, not an error.
func (c *contactService) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	contacts, err := c.contactRepository.GetAllContacts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("contacts listing failed")
		return nil, fmt.Errorf("contacts listing failed: %w", err)
	}

	return contacts, nil
}

// AddContact validates and persists a new contact for contact.UserID.
//
// Returns the persisted contact (with server-assigned ContactID) or:
//   - ErrInvalidDataProvided if Name or Number is empty.
//   - A wrapped storage error if persistence fails.
func (c *contactService) AddContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.Name == "" || contact.Number == "" {
		log.Error().Int64("user_id", contact.UserID).Msg("invalid contact data provided")
		return models.Contact{}, ErrInvalidDataProvided
	}

	createdContact, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Int64("user_id", contact.UserID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return createdContact, nil
}

// DeleteContact removes the contact with the given id if it belongs to userID
// and returns the deleted contact's id.
//
// A missing contact and a contact owned by another user both surface as a
// wrapped store.ErrContactNotFound.
func (c *contactService) DeleteContact(ctx context.Context, contactID int64, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	deletedID, err := c.contactRepository.DeleteContact(ctx, contactID, userID)
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Int64("user_id", userID).Msg("contact deletion ended with error")
		return 0, fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return deletedID, nil
}
