// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createCategory = `
INSERT INTO categories (title, description, slug, is_published, created_at)
VALUES (?, ?, ?, ?, ?)
`

// CreateCategoryParams holds the fields for CreateCategory.
type CreateCategoryParams struct {
	Title       string
	Description string
	Slug        string
	IsPublished bool
	CreatedAt   time.Time
}

// CreateCategory inserts a new category. The slug must be unique; the schema
// rejects duplicates.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (Category, error) {
	createdAt := arg.CreatedAt.UTC()
	res, err := q.db.ExecContext(ctx, createCategory,
		arg.Title, arg.Description, arg.Slug, arg.IsPublished, createdAt)
	if err != nil {
		return Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Category{}, err
	}
	return Category{
		ID:          id,
		Title:       arg.Title,
		Description: arg.Description,
		Slug:        arg.Slug,
		IsPublished: arg.IsPublished,
		CreatedAt:   createdAt,
	}, nil
}

const getCategoryByID = `
SELECT id, title, description, slug, is_published, created_at
FROM categories
WHERE id = ?
`

// GetCategoryByID returns a category by primary key regardless of its
// published flag.
func (q *Queries) GetCategoryByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := q.db.QueryRowContext(ctx, getCategoryByID, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.Slug, &c.IsPublished, &c.CreatedAt)
	return c, err
}

const getPublishedCategoryBySlug = `
SELECT id, title, description, slug, is_published, created_at
FROM categories
WHERE slug = ? AND is_published = 1
`

// GetPublishedCategoryBySlug returns a published category by slug. An
// unpublished category yields sql.ErrNoRows, indistinguishable from a
// nonexistent one.
func (q *Queries) GetPublishedCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	var c Category
	err := q.db.QueryRowContext(ctx, getPublishedCategoryBySlug, slug).
		Scan(&c.ID, &c.Title, &c.Description, &c.Slug, &c.IsPublished, &c.CreatedAt)
	return c, err
}

const listCategories = `
SELECT id, title, description, slug, is_published, created_at
FROM categories
ORDER BY title
`

// ListCategories returns all categories ordered by title.
func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Slug, &c.IsPublished, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

const updateCategory = `
UPDATE categories
SET title = ?, description = ?, slug = ?, is_published = ?
WHERE id = ?
`

// UpdateCategoryParams holds the fields for UpdateCategory. CreatedAt is
// immutable and deliberately absent.
type UpdateCategoryParams struct {
	ID          int64
	Title       string
	Description string
	Slug        string
	IsPublished bool
}

// UpdateCategory updates a category's mutable fields.
func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, updateCategory,
		arg.Title, arg.Description, arg.Slug, arg.IsPublished, arg.ID)
	return err
}

const setCategoryPublished = `
UPDATE categories
SET is_published = ?
WHERE id = ?
`

// SetCategoryPublishedParams holds the fields for SetCategoryPublished.
type SetCategoryPublishedParams struct {
	ID          int64
	IsPublished bool
}

// SetCategoryPublished toggles a category's visibility without touching
// anything else.
func (q *Queries) SetCategoryPublished(ctx context.Context, arg SetCategoryPublishedParams) error {
	_, err := q.db.ExecContext(ctx, setCategoryPublished, arg.IsPublished, arg.ID)
	return err
}

const deleteCategory = `
DELETE FROM categories
WHERE id = ?
`

// DeleteCategory removes a category. Posts referencing it keep existing with
// a NULL category (and thereby drop out of the visible set).
func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteCategory, id)
	return err
}
