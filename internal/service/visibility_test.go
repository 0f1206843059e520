package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/olegiv/blogicum-go/internal/store"
	"github.com/olegiv/blogicum-go/internal/testutil"
	"github.com/olegiv/blogicum-go/internal/util"
)

// fixture holds a database plus the rows the service tests share.
type fixture struct {
	db       *sql.DB
	queries  *store.Queries
	svc      *VisibilityService
	author   store.User
	category store.Category
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	q := store.New(db)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	author, err := q.CreateUser(ctx, store.CreateUserParams{
		Username:  "svc-author",
		Email:     "svc@example.com",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	category, err := q.CreateCategory(ctx, store.CreateCategoryParams{
		Title:       "Essays",
		Description: "Longer pieces.",
		Slug:        "essays",
		IsPublished: true,
		CreatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	return &fixture{
		db:       db,
		queries:  q,
		svc:      NewVisibilityService(db),
		author:   author,
		category: category,
		now:      now,
	}
}

func (f *fixture) createPost(t *testing.T, title string, pubDate time.Time, published bool) store.Post {
	t.Helper()
	post, err := f.queries.CreatePost(context.Background(), store.CreatePostParams{
		Title:       title,
		Text:        "Body.",
		PubDate:     pubDate,
		AuthorID:    f.author.ID,
		CategoryID:  util.NullInt64FromValue(f.category.ID),
		IsPublished: published,
		CreatedAt:   f.now,
	})
	if err != nil {
		t.Fatalf("CreatePost(%q): %v", title, err)
	}
	return post
}

func TestHomeFeedCapsAtFive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		f.createPost(t, fmt.Sprintf("Post %d", i), f.now.Add(-time.Duration(i)*time.Hour), true)
	}

	feed, err := f.svc.HomeFeed(ctx, f.now)
	if err != nil {
		t.Fatalf("HomeFeed: %v", err)
	}
	if len(feed) != HomeFeedLimit {
		t.Fatalf("len(feed) = %d, want %d", len(feed), HomeFeedLimit)
	}
	// Newest first
	for i, want := range []string{"Post 1", "Post 2", "Post 3", "Post 4", "Post 5"} {
		if feed[i].Post.Title != want {
			t.Errorf("feed[%d].Title = %q, want %q", i, feed[i].Post.Title, want)
		}
	}
}

func TestHomeFeedEmpty(t *testing.T) {
	f := newFixture(t)

	feed, err := f.svc.HomeFeed(context.Background(), f.now)
	if err != nil {
		t.Fatalf("HomeFeed on empty database: %v", err)
	}
	if len(feed) != 0 {
		t.Errorf("len(feed) = %d, want 0", len(feed))
	}
}

func TestVisiblePostsUnlimited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		f.createPost(t, fmt.Sprintf("Post %d", i), f.now.Add(-time.Duration(i)*time.Hour), true)
	}

	posts, err := f.svc.VisiblePosts(ctx, f.now)
	if err != nil {
		t.Fatalf("VisiblePosts: %v", err)
	}
	if len(posts) != 7 {
		t.Errorf("len(posts) = %d, want 7", len(posts))
	}
}

func TestPostByIDNotFoundCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hidden := f.createPost(t, "Hidden", f.now.Add(-time.Hour), false)
	scheduled := f.createPost(t, "Scheduled", f.now.Add(time.Hour), true)
	visible := f.createPost(t, "Visible", f.now.Add(-time.Hour), true)

	tests := []struct {
		name    string
		id      int64
		wantErr bool
	}{
		{"visible post", visible.ID, false},
		{"unpublished post", hidden.ID, true},
		{"scheduled post", scheduled.ID, true},
		{"nonexistent post", visible.ID + 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PostByID(ctx, f.now, tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("PostByID(%d) error = %v, want ErrNotFound", tt.id, err)
				}
			} else if err != nil {
				t.Errorf("PostByID(%d): %v", tt.id, err)
			}
		})
	}
}

func TestPostByIDUnpublishedCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "In Essays", f.now.Add(-time.Hour), true)

	if _, err := f.svc.PostByID(ctx, f.now, post.ID); err != nil {
		t.Fatalf("PostByID before unpublish: %v", err)
	}

	if err := f.queries.SetCategoryPublished(ctx, store.SetCategoryPublishedParams{
		ID:          f.category.ID,
		IsPublished: false,
	}); err != nil {
		t.Fatalf("SetCategoryPublished: %v", err)
	}

	if _, err := f.svc.PostByID(ctx, f.now, post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("PostByID after category unpublish error = %v, want ErrNotFound", err)
	}
}

func TestPostByIDScheduledBecomesVisible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "Scheduled", f.now.Add(time.Hour), true)

	if _, err := f.svc.PostByID(ctx, f.now, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("PostByID before pub_date error = %v, want ErrNotFound", err)
	}

	got, err := f.svc.PostByID(ctx, f.now.Add(time.Hour), post.ID)
	if err != nil {
		t.Fatalf("PostByID at pub_date: %v", err)
	}
	if got.Post.Title != "Scheduled" {
		t.Errorf("Title = %q, want %q", got.Post.Title, "Scheduled")
	}
}

func TestCategoryFeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createPost(t, "First", f.now.Add(-2*time.Hour), true)
	f.createPost(t, "Second", f.now.Add(-time.Hour), true)
	f.createPost(t, "Hidden", f.now.Add(-time.Hour), false)

	category, posts, err := f.svc.CategoryFeed(ctx, f.now, "essays")
	if err != nil {
		t.Fatalf("CategoryFeed: %v", err)
	}
	if category.Slug != "essays" {
		t.Errorf("category.Slug = %q, want %q", category.Slug, "essays")
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].Post.Title != "Second" || posts[1].Post.Title != "First" {
		t.Errorf("posts out of order: %q, %q", posts[0].Post.Title, posts[1].Post.Title)
	}
}

func TestCategoryFeedEmptyCategory(t *testing.T) {
	f := newFixture(t)

	// A published category with no visible posts is still a valid page
	category, posts, err := f.svc.CategoryFeed(context.Background(), f.now, "essays")
	if err != nil {
		t.Fatalf("CategoryFeed: %v", err)
	}
	if category.ID != f.category.ID {
		t.Errorf("category.ID = %d, want %d", category.ID, f.category.ID)
	}
	if len(posts) != 0 {
		t.Errorf("len(posts) = %d, want 0", len(posts))
	}
}

func TestCategoryFeedNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.queries.CreateCategory(ctx, store.CreateCategoryParams{
		Title:       "Secret",
		Slug:        "secret",
		IsPublished: false,
		CreatedAt:   f.now,
	}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	for _, slug := range []string{"secret", "no-such-slug"} {
		if _, _, err := f.svc.CategoryFeed(ctx, f.now, slug); !errors.Is(err, ErrNotFound) {
			t.Errorf("CategoryFeed(%q) error = %v, want ErrNotFound", slug, err)
		}
	}
}
