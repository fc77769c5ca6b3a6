package models

import "time"

// Contact represents a single phonebook entry owned by one user.
// Every query touching contacts is scoped by UserID so that a contact is
// visible and mutable only by its owner.
type Contact struct {
	// ContactID is the internal unique identifier of the contact.
	// Assigned by the database on creation.
	ContactID int64 `json:"id"`

	// Name is the display name of the contact.
	Name string `json:"name"`

	// Number is the contact's phone number. The format is not validated.
	Number string `json:"number"`

	// UserID references the owning user. Never serialized: ownership is
	// implied by the authenticated request.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the contact was created.
	// Listing orders by this column, newest first.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
