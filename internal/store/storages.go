package store

import "github.com/MKhiriev/go-phonebook/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ContactRepository: NewContactRepository(db, log),
	}
}
