package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/blogicum-go/internal/model"
	"github.com/olegiv/blogicum-go/internal/store"
	"github.com/olegiv/blogicum-go/internal/testutil"
)

func testLogger(t *testing.T) (*slog.Logger, *store.Queries) {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewEventLogHandler(inner, db)), store.New(db)
}

func listEvents(t *testing.T, q *store.Queries) []store.Event {
	t.Helper()
	events, err := q.ListEvents(context.Background(), store.ListEventsParams{Limit: 100, Offset: 0})
	require.NoError(t, err)
	return events
}

func TestWarningsLandInEventLog(t *testing.T) {
	logger, q := testLogger(t)

	logger.Warn("something odd happened")

	events := listEvents(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventLevelWarning, events[0].Level)
	assert.Equal(t, "something odd happened", events[0].Message)
}

func TestInfoDoesNotLandInEventLog(t *testing.T) {
	logger, q := testLogger(t)

	logger.Info("routine message")
	logger.Debug("noise")

	assert.Empty(t, listEvents(t, q))
}

func TestErrorLevel(t *testing.T) {
	logger, q := testLogger(t)

	logger.Error("it broke")

	events := listEvents(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventLevelError, events[0].Level)
}

func TestCategoryFromAttr(t *testing.T) {
	logger, q := testLogger(t)

	logger.Warn("flagged", "category", model.EventCategoryPost)

	events := listEvents(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventCategoryPost, events[0].Category)
}

func TestCategoryFromMessage(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"failed to load post", model.EventCategoryPost},
		{"category feed rejected", model.EventCategoryCategory},
		{"location lookup stalled", model.EventCategoryLocation},
		{"disk almost full", model.EventCategorySystem},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			logger, q := testLogger(t)
			logger.Warn(tt.message)

			events := listEvents(t, q)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Category)
		})
	}
}

func TestMetadataSerialized(t *testing.T) {
	logger, q := testLogger(t)

	logger.Warn("public rate limit exceeded", "ip", "10.0.0.1", "path", "/")

	events := listEvents(t, q)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"ip": "10.0.0.1", "path": "/"}`, events[0].Metadata)
}

func TestNoAttrsMetadataIsEmptyObject(t *testing.T) {
	logger, q := testLogger(t)

	logger.Warn("bare warning about the system")

	events := listEvents(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, "{}", events[0].Metadata)
}

func TestWithAttrsKeepsEventLog(t *testing.T) {
	logger, q := testLogger(t)

	logger.With("request_id", "abc123").Warn("derived logger still audits")

	events := listEvents(t, q)
	require.Len(t, events, 1)
}
