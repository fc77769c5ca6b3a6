package store

import "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password, created_at;`

	findUserByEmail = `SELECT id, name, email, password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, created_at
    FROM users
    WHERE id = $1;`

	createContact = `INSERT INTO contacts (name, number, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, name, number, user_id, created_at;`
)

// psql is the statement builder used for contact queries that need dynamic
// WHERE clauses. PostgreSQL expects $N placeholders, not the default '?'.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildGetAllContactsQuery builds the owner-scoped contact listing query.
// Contacts are returned newest first.
func buildGetAllContactsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "name", "number", "user_id", "created_at").
		From("contacts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildDeleteContactQuery builds the owner-scoped contact deletion query.
// The RETURNING clause lets the caller distinguish "deleted" from
// "not found or owned by someone else" without a separate lookup.
func buildDeleteContactQuery(contactID int64, userID int64) (string, []any, error) {
	return psql.
		Delete("contacts").
		Where(squirrel.Eq{"id": contactID, "user_id": userID}).
		Suffix("RETURNING id").
		ToSql()
}
