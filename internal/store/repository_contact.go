// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/jackc/pgerrcode"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every query is scoped by the owning user's id, so one
// user can never read or delete another user's contacts.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllContacts returns every contact owned by userID, newest first.
// A user with no contacts gets an empty slice, not an error.
func (r *contactRepository) GetAllContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllContactsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetAllContacts").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetAllContacts").Msg("error: executing query")
		r.logRetryable(ctx, err)
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ContactID, &contact.Name, &contact.Number, &contact.UserID, &contact.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.GetAllContacts").Msg("error: scanning row")
			return nil, errors.Join(ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.GetAllContacts").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return contacts, nil
}

// CreateContact persists a new contact record and returns it with the
// server-assigned fields (ContactID, CreatedAt) populated.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound]
//     (the owning account was deleted between authentication and insert).
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact, contact.Name, contact.Number, contact.UserID)

	// create contact in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Contact{}, ErrNoUserWasFound
		default:
			r.logRetryable(ctx, err)
			return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved contact from db
	if err := row.Scan(&contact.ContactID, &contact.Name, &contact.Number, &contact.UserID, &contact.CreatedAt); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: scanning error")
		return models.Contact{}, err
	}

	return contact, nil
}

// DeleteContact removes the contact with the given id if it belongs to
// userID, and returns the deleted contact's id.
//
// A missing contact and a contact owned by another user are
// indistinguishable to the caller: both yield [ErrContactNotFound].
func (r *contactRepository) DeleteContact(ctx context.Context, contactID int64, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(contactID, userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: building query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// delete contact from db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: row is nil")
		r.logRetryable(ctx, err)
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan deleted contact's id
	var deletedID int64
	if err := row.Scan(&deletedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: scanning error")
		return 0, err
	}

	return deletedID, nil
}

func (r *contactRepository) logRetryable(ctx context.Context, err error) {
	if r.db.errorClassificator == nil {
		return
	}
	if r.db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, operation may be retried")
	}
}
