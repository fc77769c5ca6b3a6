package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/jackc/pgerrcode"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestGetAllContacts_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "number", "user_id", "created_at"}).
		AddRow(2, "Bob", "+2222", 1, now).
		AddRow(1, "Alice", "+1111", 1, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, name, number, user_id, created_at FROM contacts").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	contacts, err := repo.GetAllContacts(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Bob" {
		t.Errorf("expected newest contact first, got %s", contacts[0].Name)
	}
}

func TestGetAllContacts_Empty(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "number", "user_id", "created_at"})

	mock.ExpectQuery("SELECT id, name, number, user_id, created_at FROM contacts").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	contacts, err := repo.GetAllContacts(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contacts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(contacts) != 0 {
		t.Fatalf("expected 0 contacts, got %d", len(contacts))
	}
}

func TestGetAllContacts_QueryError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, number, user_id, created_at FROM contacts").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetAllContacts(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllContacts_ScanError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)

	mock.ExpectQuery("SELECT id, name, number, user_id, created_at FROM contacts").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	_, err := repo.GetAllContacts(ctx, 1)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestCreateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{
		Name:   "Alice",
		Number: "+1111",
		UserID: 1,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "name", "number", "user_id", "created_at"}).
		AddRow(5, contact.Name, contact.Number, contact.UserID, now)

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.Name, contact.Number, contact.UserID).
		WillReturnRows(rows)

	created, err := repo.CreateContact(ctx, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ContactID != 5 {
		t.Errorf("expected ContactID=5, got %d", created.ContactID)
	}
	if created.Name != contact.Name {
		t.Errorf("expected name %s, got %s", contact.Name, created.Name)
	}
}

func TestCreateContact_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{Name: "Alice", Number: "+1111", UserID: 999}

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateContact(ctx, contact)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestCreateContact_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{Name: "Alice", Number: "+1111", UserID: 1}

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateContact(ctx, contact)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestDeleteContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(3)

	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(rows)

	deletedID, err := repo.DeleteContact(ctx, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != 3 {
		t.Errorf("expected deleted id 3, got %d", deletedID)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"})

	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(rows)

	_, err := repo.DeleteContact(ctx, 3, 1)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteContact_OtherUsersContact(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	// contact 3 exists but belongs to user 1 — user 2 gets no rows back
	rows := sqlmock.NewRows([]string{"id"})

	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs(int64(3), int64(2)).
		WillReturnRows(rows)

	_, err := repo.DeleteContact(ctx, 3, 2)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteContact_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs(int64(3), int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.DeleteContact(ctx, 3, 1)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
