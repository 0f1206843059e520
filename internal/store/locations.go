// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createLocation = `
INSERT INTO locations (name, is_published, created_at)
VALUES (?, ?, ?)
`

// CreateLocationParams holds the fields for CreateLocation.
type CreateLocationParams struct {
	Name        string
	IsPublished bool
	CreatedAt   time.Time
}

// CreateLocation inserts a new location. Names are not unique.
func (q *Queries) CreateLocation(ctx context.Context, arg CreateLocationParams) (Location, error) {
	createdAt := arg.CreatedAt.UTC()
	res, err := q.db.ExecContext(ctx, createLocation, arg.Name, arg.IsPublished, createdAt)
	if err != nil {
		return Location{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Location{}, err
	}
	return Location{
		ID:          id,
		Name:        arg.Name,
		IsPublished: arg.IsPublished,
		CreatedAt:   createdAt,
	}, nil
}

const getLocationByID = `
SELECT id, name, is_published, created_at
FROM locations
WHERE id = ?
`

// GetLocationByID returns a location by primary key.
func (q *Queries) GetLocationByID(ctx context.Context, id int64) (Location, error) {
	var l Location
	err := q.db.QueryRowContext(ctx, getLocationByID, id).
		Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt)
	return l, err
}

const listLocations = `
SELECT id, name, is_published, created_at
FROM locations
ORDER BY name
`

// ListLocations returns all locations ordered by name.
func (q *Queries) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := q.db.QueryContext(ctx, listLocations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

const updateLocation = `
UPDATE locations
SET name = ?, is_published = ?
WHERE id = ?
`

// UpdateLocationParams holds the fields for UpdateLocation.
type UpdateLocationParams struct {
	ID          int64
	Name        string
	IsPublished bool
}

// UpdateLocation updates a location's mutable fields.
func (q *Queries) UpdateLocation(ctx context.Context, arg UpdateLocationParams) error {
	_, err := q.db.ExecContext(ctx, updateLocation, arg.Name, arg.IsPublished, arg.ID)
	return err
}

const deleteLocation = `
DELETE FROM locations
WHERE id = ?
`

// DeleteLocation removes a location. Posts referencing it keep existing with
// a NULL location; their visibility is unaffected.
func (q *Queries) DeleteLocation(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteLocation, id)
	return err
}
