package service

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type ContactService interface {
	ListContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	AddContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64, userID int64) (int64, error)
}
