package service

import (
	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/crypto"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
	}
}
