package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository is the persistence capability the service depends on.
// Implementations may be in-memory or SQL-backed; the service only relies on
// List returning a consistent snapshot in insertion order.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (User, error)
	Insert(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, userID int64) error
}

var _ Repository = &SQLRepository{}

// SQLRepository persists users in a relational database. The unique indexes
// on lower(email) and phone_number back up the service-level uniqueness
// checks.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const QueryUserList = "SELECT id, name, email, phone_number FROM users ORDER BY id"

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrQueryFailed, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate over user rows: %v", ErrQueryFailed, err)
	}

	return users, nil
}

const QueryUserFind = "SELECT id, name, email, phone_number FROM users WHERE id = $1"

func (r *SQLRepository) Find(ctx context.Context, userID int64) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFind, userID)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: find user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const QueryUserInsert = `
INSERT INTO users (id, name, email, phone_number)
VALUES ($1, $2, $3, $4)
`

func (r *SQLRepository) Insert(ctx context.Context, u User) error {
	if _, err := r.db.ExecContext(ctx, QueryUserInsert, u.ID, u.Name, u.Email, u.PhoneNumber); err != nil {
		return fmt.Errorf("%w: insert user with email %s: %v", ErrQueryFailed, u.Email, err)
	}
	return nil
}

const QueryUserUpdate = `
UPDATE users
SET name = $2, email = $3, phone_number = $4
WHERE id = $1
`

func (r *SQLRepository) Update(ctx context.Context, u User) error {
	res, err := r.db.ExecContext(ctx, QueryUserUpdate, u.ID, u.Name, u.Email, u.PhoneNumber)
	if err != nil {
		return fmt.Errorf("%w: update user with id %d: %v", ErrQueryFailed, u.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update user with id %d: %v", ErrQueryFailed, u.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

const QueryUserDelete = "DELETE FROM users WHERE id = $1"

func (r *SQLRepository) Delete(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, QueryUserDelete, userID)
	if err != nil {
		return fmt.Errorf("%w: delete user with id %d: %v", ErrQueryFailed, userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete user with id %d: %v", ErrQueryFailed, userID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
