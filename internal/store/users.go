// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createUser = `
INSERT INTO users (username, email, created_at)
VALUES (?, ?, ?)
`

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Username  string
	Email     string
	CreatedAt time.Time
}

// CreateUser inserts a new author record.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	createdAt := arg.CreatedAt.UTC()
	res, err := q.db.ExecContext(ctx, createUser, arg.Username, arg.Email, createdAt)
	if err != nil {
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return User{
		ID:        id,
		Username:  arg.Username,
		Email:     arg.Email,
		CreatedAt: createdAt,
	}, nil
}

const getUserByID = `
SELECT id, username, email, created_at
FROM users
WHERE id = ?
`

// GetUserByID returns a user by primary key.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := q.db.QueryRowContext(ctx, getUserByID, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}

const getUserByUsername = `
SELECT id, username, email, created_at
FROM users
WHERE username = ?
`

// GetUserByUsername returns a user by their unique username.
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := q.db.QueryRowContext(ctx, getUserByUsername, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}

const deleteUser = `
DELETE FROM users
WHERE id = ?
`

// DeleteUser removes a user. Their posts are cascade-deleted by the schema.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUser, id)
	return err
}
