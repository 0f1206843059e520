// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/blogicum-go/internal/util"
)

// Demo author created by Seed
const (
	DemoAuthorUsername = "demo-author"
	DemoAuthorEmail    = "author@example.com"
)

// Seed creates demo data in the database: one author, a few categories and
// locations, and posts that exercise the visibility rules (one scheduled in
// the future, one unpublished, one in an unpublished category). It is
// idempotent: if the demo author already exists, nothing is written.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetUserByUsername(ctx, DemoAuthorUsername)
	if err == nil {
		slog.Info("demo author already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for demo author: %w", err)
	}

	now := time.Now().UTC()

	author, err := queries.CreateUser(ctx, CreateUserParams{
		Username:  DemoAuthorUsername,
		Email:     DemoAuthorEmail,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating demo author: %w", err)
	}

	type categorySpec struct {
		title       string
		description string
		published   bool
	}
	categorySpecs := []categorySpec{
		{"Travel Notes", "Trips, routes, and places worth the detour.", true},
		{"City Life", "Observations from the streets.", true},
		{"Drafts Corner", "Not ready for readers yet.", false},
	}

	categories := make([]Category, 0, len(categorySpecs))
	for _, cs := range categorySpecs {
		c, err := queries.CreateCategory(ctx, CreateCategoryParams{
			Title:       cs.title,
			Description: cs.description,
			Slug:        util.Slugify(cs.title),
			IsPublished: cs.published,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("creating category %q: %w", cs.title, err)
		}
		categories = append(categories, c)
	}

	locationNames := []string{"Riverside", "Old Town"}
	locations := make([]Location, 0, len(locationNames))
	for _, name := range locationNames {
		l, err := queries.CreateLocation(ctx, CreateLocationParams{
			Name:        name,
			IsPublished: true,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("creating location %q: %w", name, err)
		}
		locations = append(locations, l)
	}

	posts := []CreatePostParams{
		{
			Title:       "A weekend by the river",
			Text:        "Packed light, left early, and the fog lifted just past the bridge.",
			PubDate:     now.Add(-72 * time.Hour),
			AuthorID:    author.ID,
			LocationID:  util.NullInt64FromValue(locations[0].ID),
			CategoryID:  util.NullInt64FromValue(categories[0].ID),
			IsPublished: true,
			CreatedAt:   now,
		},
		{
			Title:       "Market mornings",
			Text:        "The stalls open before the streetlights go out.",
			PubDate:     now.Add(-24 * time.Hour),
			AuthorID:    author.ID,
			LocationID:  util.NullInt64FromValue(locations[1].ID),
			CategoryID:  util.NullInt64FromValue(categories[1].ID),
			IsPublished: true,
			CreatedAt:   now,
		},
		{
			// Scheduled: becomes visible once its pub_date passes
			Title:       "Next month's route",
			Text:        "Planning notes for the northern loop.",
			PubDate:     now.Add(30 * 24 * time.Hour),
			AuthorID:    author.ID,
			CategoryID:  util.NullInt64FromValue(categories[0].ID),
			IsPublished: true,
			CreatedAt:   now,
		},
		{
			// Hidden by its own flag
			Title:       "Unfinished thoughts",
			Text:        "Do not publish yet.",
			PubDate:     now.Add(-time.Hour),
			AuthorID:    author.ID,
			CategoryID:  util.NullInt64FromValue(categories[1].ID),
			IsPublished: false,
			CreatedAt:   now,
		},
		{
			// Hidden because its category is unpublished
			Title:       "Sketch for a longer piece",
			Text:        "Fragments and a rough outline.",
			PubDate:     now.Add(-time.Hour),
			AuthorID:    author.ID,
			CategoryID:  util.NullInt64FromValue(categories[2].ID),
			IsPublished: true,
			CreatedAt:   now,
		},
	}

	for _, p := range posts {
		if _, err := queries.CreatePost(ctx, p); err != nil {
			return fmt.Errorf("creating post %q: %w", p.Title, err)
		}
	}

	slog.Info("seeded demo data",
		"author", author.Username,
		"categories", len(categories),
		"locations", len(locations),
		"posts", len(posts),
	)

	return nil
}
