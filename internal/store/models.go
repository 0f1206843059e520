// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the database layer: connection setup, embedded
// migrations, and typed queries over the blog schema.
package store

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the interface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New creates a Queries instance bound to the given database or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds typed query methods over the blog schema.
type Queries struct {
	db DBTX
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// User is an author record mirrored from the external user directory.
// Deleting a user cascades to delete their posts.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

// Category groups posts under a unique URL slug.
type Category struct {
	ID          int64
	Title       string
	Description string
	Slug        string
	IsPublished bool
	CreatedAt   time.Time
}

// Location is an optional place attached to posts. Deleting a location
// clears the reference on its posts without deleting them.
type Location struct {
	ID          int64
	Name        string
	IsPublished bool
	CreatedAt   time.Time
}

// Post is a blog publication. LocationID and CategoryID are nullable:
// deleting the referenced row sets them to NULL, while deleting the author
// deletes the post.
type Post struct {
	ID          int64
	Title       string
	Text        string
	PubDate     time.Time
	AuthorID    int64
	LocationID  sql.NullInt64
	CategoryID  sql.NullInt64
	IsPublished bool
	CreatedAt   time.Time
}

// Event is a system event log entry.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string // JSON string
	CreatedAt time.Time
}

// PostWithRelations is a post with its author, category, and location
// pre-loaded in the same query. Location is nil when the post has none.
// Category is always present: the visible-post queries inner-join it.
type PostWithRelations struct {
	Post     Post
	Author   User
	Category Category
	Location *Location
}
