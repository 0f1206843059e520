// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service contains the visibility query service, the single source
// of truth for what anonymous readers are allowed to see.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/blogicum-go/internal/store"
)

// ErrNotFound is returned when the requested entity does not exist or is
// filtered out by the visibility rules. The two cases are deliberately
// indistinguishable so the public surface leaks nothing about hidden or
// scheduled content.
var ErrNotFound = errors.New("not found")

// HomeFeedLimit is the number of posts on the home feed.
const HomeFeedLimit = 5

// VisibilityService answers every anonymous read. A post is visible iff it
// is published, its category exists and is published, and its pub_date is
// not after the query moment. The moment is always an explicit parameter so
// the predicate stays pure; nothing here reads the ambient clock or caches
// results between calls.
type VisibilityService struct {
	queries *store.Queries
}

// NewVisibilityService creates a VisibilityService on top of the given database.
func NewVisibilityService(db *sql.DB) *VisibilityService {
	return &VisibilityService{
		queries: store.New(db),
	}
}

// VisiblePosts returns every post visible at the given moment, newest first,
// with author, category, and location pre-loaded.
func (s *VisibilityService) VisiblePosts(ctx context.Context, now time.Time) ([]store.PostWithRelations, error) {
	posts, err := s.queries.ListVisiblePosts(ctx, store.ListVisiblePostsParams{
		Now:   now,
		Limit: -1,
	})
	if err != nil {
		return nil, fmt.Errorf("listing visible posts: %w", err)
	}
	return posts, nil
}

// HomeFeed returns the newest visible posts, capped at HomeFeedLimit. An
// empty feed is a valid result, never an error.
func (s *VisibilityService) HomeFeed(ctx context.Context, now time.Time) ([]store.PostWithRelations, error) {
	posts, err := s.queries.ListVisiblePosts(ctx, store.ListVisiblePostsParams{
		Now:   now,
		Limit: HomeFeedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing home feed: %w", err)
	}
	return posts, nil
}

// PostByID returns a single post by primary key if it is visible at the
// given moment, and ErrNotFound otherwise.
func (s *VisibilityService) PostByID(ctx context.Context, now time.Time, id int64) (store.PostWithRelations, error) {
	post, err := s.queries.GetVisiblePostByID(ctx, store.GetVisiblePostByIDParams{
		ID:  id,
		Now: now,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return store.PostWithRelations{}, ErrNotFound
	}
	if err != nil {
		return store.PostWithRelations{}, fmt.Errorf("getting visible post %d: %w", id, err)
	}
	return post, nil
}

// CategoryFeed returns a published category by slug together with its
// visible posts. An unpublished category yields ErrNotFound exactly like a
// nonexistent one.
func (s *VisibilityService) CategoryFeed(ctx context.Context, now time.Time, slug string) (store.Category, []store.PostWithRelations, error) {
	category, err := s.queries.GetPublishedCategoryBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Category{}, nil, ErrNotFound
	}
	if err != nil {
		return store.Category{}, nil, fmt.Errorf("getting category %q: %w", slug, err)
	}

	posts, err := s.queries.ListVisiblePostsByCategory(ctx, store.ListVisiblePostsByCategoryParams{
		CategoryID: category.ID,
		Now:        now,
		Limit:      -1,
	})
	if err != nil {
		return store.Category{}, nil, fmt.Errorf("listing posts for category %q: %w", slug, err)
	}

	return category, posts, nil
}
