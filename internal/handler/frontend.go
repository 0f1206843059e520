// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/olegiv/blogicum-go/internal/service"
	"github.com/olegiv/blogicum-go/internal/store"
	"github.com/olegiv/blogicum-go/internal/util"
)

// excerptMaxLen bounds the feed excerpt length.
const excerptMaxLen = 200

// AuthorResponse represents a post author in API responses.
type AuthorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
}

// LocationResponse represents a location in API responses.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PostResponse represents a post in feed responses. Detail responses
// additionally carry the full text and its rendered HTML.
type PostResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Excerpt   string            `json:"excerpt"`
	Text      string            `json:"text,omitempty"`
	HTML      string            `json:"html,omitempty"`
	PubDate   time.Time         `json:"pub_date"`
	CreatedAt time.Time         `json:"created_at"`
	Author    AuthorResponse    `json:"author"`
	Category  CategoryResponse  `json:"category"`
	Location  *LocationResponse `json:"location,omitempty"`
}

// FrontendHandler serves the public read-only routes: home feed, post
// detail, and category feed. Every read funnels through the visibility
// service; the query moment is taken once per request.
type FrontendHandler struct {
	visibility *service.VisibilityService
	logger     *slog.Logger
	markdown   goldmark.Markdown
	sanitizer  *bluemonday.Policy
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, logger *slog.Logger) *FrontendHandler {
	return &FrontendHandler{
		visibility: service.NewVisibilityService(db),
		logger:     logger,
		markdown:   goldmark.New(),
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

// Home handles GET / - the home feed of the five newest visible posts.
// An empty feed is a valid response, never an error.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now().UTC()

	posts, err := h.visibility.HomeFeed(ctx, now)
	if err != nil {
		h.logger.Error("failed to load home feed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		views = append(views, h.postToResponse(p, false))
	}

	writeJSONSuccess(w, map[string]any{
		"posts": views,
	})
}

// PostDetail handles GET /posts/{id} - a single visible post. A post that
// exists but is hidden, scheduled, or in an unpublished category answers
// 404 exactly like a nonexistent id.
func (h *FrontendHandler) PostDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now().UTC()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Not Found")
		return
	}

	post, err := h.visibility.PostByID(ctx, now, id)
	if errors.Is(err, service.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Not Found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load post", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"post": h.postToResponse(post, true),
	})
}

// CategoryFeed handles GET /category/{slug} - a published category and its
// visible posts. An unpublished category answers 404 exactly like an
// unknown slug.
func (h *FrontendHandler) CategoryFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now().UTC()

	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		writeJSONError(w, http.StatusNotFound, "Not Found")
		return
	}

	category, posts, err := h.visibility.CategoryFeed(ctx, now, slug)
	if errors.Is(err, service.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Not Found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load category feed", "slug", slug, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		views = append(views, h.postToResponse(p, false))
	}

	writeJSONSuccess(w, map[string]any{
		"category": CategoryResponse{
			ID:          category.ID,
			Title:       category.Title,
			Description: category.Description,
			Slug:        category.Slug,
		},
		"posts": views,
	})
}

// NotFound handles unmatched routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, http.StatusNotFound, "Not Found")
}

// postToResponse converts a store row to a response. Detail responses carry
// the full text and its rendered, sanitized HTML; feed entries only the
// excerpt.
func (h *FrontendHandler) postToResponse(p store.PostWithRelations, detail bool) PostResponse {
	resp := PostResponse{
		ID:        p.Post.ID,
		Title:     p.Post.Title,
		Excerpt:   generateExcerpt(p.Post.Text, excerptMaxLen),
		PubDate:   p.Post.PubDate,
		CreatedAt: p.Post.CreatedAt,
		Author: AuthorResponse{
			ID:       p.Author.ID,
			Username: p.Author.Username,
		},
		Category: CategoryResponse{
			ID:          p.Category.ID,
			Title:       p.Category.Title,
			Description: p.Category.Description,
			Slug:        p.Category.Slug,
		},
	}

	if p.Location != nil {
		resp.Location = &LocationResponse{
			ID:   p.Location.ID,
			Name: p.Location.Name,
		}
	}

	if detail {
		resp.Text = p.Post.Text
		resp.HTML = h.renderText(p.Post.Text)
	}

	return resp
}

// renderText converts markdown post text to sanitized HTML.
func (h *FrontendHandler) renderText(text string) string {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(text), &buf); err != nil {
		h.logger.Warn("failed to render post text", "error", err)
		return ""
	}
	return h.sanitizer.Sanitize(buf.String())
}

// generateExcerpt creates a plain-text excerpt, truncated at a word boundary.
func generateExcerpt(text string, maxLen int) string {
	// Collapse whitespace
	text = strings.Join(strings.Fields(text), " ")

	if len(text) <= maxLen {
		return text
	}

	// Truncate at word boundary
	truncated := text[:maxLen]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return truncated + "..."
}
