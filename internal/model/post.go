// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model holds domain constants and derived state logic shared by the
// store, service, and handler layers.
package model

import "time"

// TitleMaxLen bounds the length of post titles, category titles, and
// location names.
const TitleMaxLen = 256

// Visibility is the derived reader-facing state of a post. It is computed
// from stored flags and wall-clock time on every query and never persisted.
type Visibility string

const (
	// VisibilityHidden means the post or its category is unpublished, or the
	// post has no category at all. A post without a category is hidden even
	// when its own is_published flag is set.
	VisibilityHidden Visibility = "hidden"
	// VisibilityScheduled means the post would be visible except its pub_date
	// is still in the future.
	VisibilityScheduled Visibility = "scheduled"
	// VisibilityVisible means the post is shown to anonymous readers.
	VisibilityVisible Visibility = "visible"
)

// PostVisibility computes the visibility state of a post at the given moment.
// hasCategory is false when the post's category reference is NULL (for
// example after the category was deleted); such posts are hidden regardless
// of their own published flag.
func PostVisibility(postPublished, hasCategory, categoryPublished bool, pubDate, now time.Time) Visibility {
	if !postPublished || !hasCategory || !categoryPublished {
		return VisibilityHidden
	}
	if pubDate.After(now) {
		return VisibilityScheduled
	}
	return VisibilityVisible
}
