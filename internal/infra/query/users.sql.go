package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, first_name, last_name, password_hash, role, is_active, last_login, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
	)
	return u, err
}

const insertUser = `INSERT INTO users (id, email, first_name, last_name, password_hash, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type InsertUserParams struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) InsertUser(ctx context.Context, db DBTX, arg InsertUserParams) error {
	_, err := db.Exec(ctx, insertUser,
		arg.ID,
		arg.Email,
		arg.FirstName,
		arg.LastName,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updateUserLastLogin, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateUser = `UPDATE users SET email = $2, first_name = $3, last_name = $4, password_hash = $5
WHERE id = $1`

type UpdateUserParams struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

func (q *Queries) UpdateUser(ctx context.Context, db DBTX, arg UpdateUserParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUser, arg.ID, arg.Email, arg.FirstName, arg.LastName, arg.PasswordHash)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteUser = `DELETE FROM users WHERE id = $1`

func (q *Queries) DeleteUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listUsers = `SELECT ` + userColumns + ` FROM users
ORDER BY created_at, id
LIMIT $1 OFFSET $2`

func (q *Queries) ListUsers(ctx context.Context, db DBTX, limit, offset int32) ([]User, error) {
	rows, err := db.Query(ctx, listUsers, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const countUsers = `SELECT count(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countUsers).Scan(&n)
	return n, err
}
