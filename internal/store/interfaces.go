// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

// UserRepository persists accounts and looks them up for authentication.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ContactRepository persists phonebook entries scoped to their owner.
type ContactRepository interface {
	GetAllContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64, userID int64) (int64, error)
}
