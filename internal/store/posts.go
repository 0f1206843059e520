// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createPost = `
INSERT INTO posts (title, text, pub_date, author_id, location_id, category_id, is_published, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// CreatePostParams holds the fields for CreatePost. LocationID and
// CategoryID may be invalid (NULL).
type CreatePostParams struct {
	Title       string
	Text        string
	PubDate     time.Time
	AuthorID    int64
	LocationID  sql.NullInt64
	CategoryID  sql.NullInt64
	IsPublished bool
	CreatedAt   time.Time
}

// CreatePost inserts a new post. PubDate may be in the future for scheduled
// publication.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	pubDate := arg.PubDate.UTC()
	createdAt := arg.CreatedAt.UTC()
	res, err := q.db.ExecContext(ctx, createPost,
		arg.Title, arg.Text, pubDate, arg.AuthorID,
		arg.LocationID, arg.CategoryID, arg.IsPublished, createdAt)
	if err != nil {
		return Post{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Post{}, err
	}
	return Post{
		ID:          id,
		Title:       arg.Title,
		Text:        arg.Text,
		PubDate:     pubDate,
		AuthorID:    arg.AuthorID,
		LocationID:  arg.LocationID,
		CategoryID:  arg.CategoryID,
		IsPublished: arg.IsPublished,
		CreatedAt:   createdAt,
	}, nil
}

const getPostByID = `
SELECT id, title, text, pub_date, author_id, location_id, category_id, is_published, created_at
FROM posts
WHERE id = ?
`

// GetPostByID returns a post by primary key with no visibility filtering.
// Read paths serving anonymous readers must go through the visible-post
// queries instead.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := q.db.QueryRowContext(ctx, getPostByID, id).
		Scan(&p.ID, &p.Title, &p.Text, &p.PubDate, &p.AuthorID,
			&p.LocationID, &p.CategoryID, &p.IsPublished, &p.CreatedAt)
	return p, err
}

const updatePost = `
UPDATE posts
SET title = ?, text = ?, pub_date = ?, location_id = ?, category_id = ?, is_published = ?
WHERE id = ?
`

// UpdatePostParams holds the fields for UpdatePost. AuthorID and CreatedAt
// are immutable.
type UpdatePostParams struct {
	ID          int64
	Title       string
	Text        string
	PubDate     time.Time
	LocationID  sql.NullInt64
	CategoryID  sql.NullInt64
	IsPublished bool
}

// UpdatePost updates a post's mutable fields.
func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) error {
	_, err := q.db.ExecContext(ctx, updatePost,
		arg.Title, arg.Text, arg.PubDate.UTC(),
		arg.LocationID, arg.CategoryID, arg.IsPublished, arg.ID)
	return err
}

const setPostPublished = `
UPDATE posts
SET is_published = ?
WHERE id = ?
`

// SetPostPublishedParams holds the fields for SetPostPublished.
type SetPostPublishedParams struct {
	ID          int64
	IsPublished bool
}

// SetPostPublished toggles a post's visibility without deleting history.
func (q *Queries) SetPostPublished(ctx context.Context, arg SetPostPublishedParams) error {
	_, err := q.db.ExecContext(ctx, setPostPublished, arg.IsPublished, arg.ID)
	return err
}

const deletePost = `
DELETE FROM posts
WHERE id = ?
`

// DeletePost removes a post.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePost, id)
	return err
}

const countPosts = `
SELECT COUNT(*)
FROM posts
`

// CountPosts returns the total number of posts, visible or not.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPosts).Scan(&count)
	return count, err
}

// Visible-post queries. All anonymous read paths share this single SELECT
// shape: the author and category are inner-joined (a post whose category
// reference is NULL is excluded on purpose), the location is left-joined,
// and the WHERE clause is the one visibility predicate.
const visiblePostSelect = `
SELECT
    p.id, p.title, p.text, p.pub_date, p.author_id, p.location_id, p.category_id, p.is_published, p.created_at,
    u.id, u.username, u.email, u.created_at,
    c.id, c.title, c.description, c.slug, c.is_published, c.created_at,
    l.id, l.name, l.is_published, l.created_at
FROM posts p
INNER JOIN users u ON u.id = p.author_id
INNER JOIN categories c ON c.id = p.category_id
LEFT JOIN locations l ON l.id = p.location_id
WHERE p.is_published = 1
  AND c.is_published = 1
  AND p.pub_date <= ?
`

// rowScanner abstracts *sql.Row and *sql.Rows for scanPostWithRelations.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostWithRelations(row rowScanner) (PostWithRelations, error) {
	var (
		pr           PostWithRelations
		locID        sql.NullInt64
		locName      sql.NullString
		locPublished sql.NullBool
		locCreatedAt sql.NullTime
	)
	err := row.Scan(
		&pr.Post.ID, &pr.Post.Title, &pr.Post.Text, &pr.Post.PubDate,
		&pr.Post.AuthorID, &pr.Post.LocationID, &pr.Post.CategoryID,
		&pr.Post.IsPublished, &pr.Post.CreatedAt,
		&pr.Author.ID, &pr.Author.Username, &pr.Author.Email, &pr.Author.CreatedAt,
		&pr.Category.ID, &pr.Category.Title, &pr.Category.Description,
		&pr.Category.Slug, &pr.Category.IsPublished, &pr.Category.CreatedAt,
		&locID, &locName, &locPublished, &locCreatedAt,
	)
	if err != nil {
		return PostWithRelations{}, err
	}
	if locID.Valid {
		pr.Location = &Location{
			ID:          locID.Int64,
			Name:        locName.String,
			IsPublished: locPublished.Bool,
			CreatedAt:   locCreatedAt.Time,
		}
	}
	return pr, nil
}

const listVisiblePosts = visiblePostSelect + `
ORDER BY p.pub_date DESC
LIMIT ?
`

// ListVisiblePostsParams holds the fields for ListVisiblePosts. A negative
// Limit returns all visible posts.
type ListVisiblePostsParams struct {
	Now   time.Time
	Limit int64
}

// ListVisiblePosts returns posts visible to anonymous readers at the given
// moment, newest first, with author, category, and location pre-loaded.
func (q *Queries) ListVisiblePosts(ctx context.Context, arg ListVisiblePostsParams) ([]PostWithRelations, error) {
	rows, err := q.db.QueryContext(ctx, listVisiblePosts, arg.Now.UTC(), arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostWithRelations
	for rows.Next() {
		pr, err := scanPostWithRelations(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, pr)
	}
	return posts, rows.Err()
}

const getVisiblePostByID = visiblePostSelect + `
  AND p.id = ?
`

// GetVisiblePostByIDParams holds the fields for GetVisiblePostByID.
type GetVisiblePostByIDParams struct {
	ID  int64
	Now time.Time
}

// GetVisiblePostByID returns a single visible post by primary key. A post
// that exists but is hidden, scheduled, or in an unpublished or deleted
// category yields sql.ErrNoRows, exactly like a nonexistent one.
func (q *Queries) GetVisiblePostByID(ctx context.Context, arg GetVisiblePostByIDParams) (PostWithRelations, error) {
	row := q.db.QueryRowContext(ctx, getVisiblePostByID, arg.Now.UTC(), arg.ID)
	return scanPostWithRelations(row)
}

const listVisiblePostsByCategory = visiblePostSelect + `
  AND p.category_id = ?
ORDER BY p.pub_date DESC
LIMIT ?
`

// ListVisiblePostsByCategoryParams holds the fields for
// ListVisiblePostsByCategory. A negative Limit returns all matching posts.
type ListVisiblePostsByCategoryParams struct {
	CategoryID int64
	Now        time.Time
	Limit      int64
}

// ListVisiblePostsByCategory returns the visible posts in one category,
// newest first.
func (q *Queries) ListVisiblePostsByCategory(ctx context.Context, arg ListVisiblePostsByCategoryParams) ([]PostWithRelations, error) {
	rows, err := q.db.QueryContext(ctx, listVisiblePostsByCategory, arg.Now.UTC(), arg.CategoryID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostWithRelations
	for rows.Next() {
		pr, err := scanPostWithRelations(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, pr)
	}
	return posts, rows.Err()
}
