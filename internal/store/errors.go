package store

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("user with given email already exists")
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrContactNotFound    = errors.New("contact not found")

	ErrBuildingSQLQuery = errors.New("error occurred during building SQL query")
	ErrExecutingQuery   = errors.New("error occurred during query execution")
	ErrScanningRow      = errors.New("error occurred during scanning returned row")
	ErrScanningRows     = errors.New("error occurred during scanning returned rows")
)
