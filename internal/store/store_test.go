package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
	if s.Driver() != DriverSQLite {
		t.Fatalf("driver = %q, want %q", s.Driver(), DriverSQLite)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("oracle"), "")
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabaseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "languify.db")
	require.NoError(t, EnsureDir(path))

	ctx := context.Background()
	s, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, s.LessonRepo().SaveLesson(ctx, LessonRecord{
		ID: "dynamic-1", English: "Hello", CorrectAnswer: "Hola", Payload: "{}",
	}))
	require.NoError(t, s.Close())

	// Schema creation must be idempotent.
	s, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.LessonRepo().GetLesson(ctx, "dynamic-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Hola", rec.CorrectAnswer)
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson-annotate", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true, RequestBody: `{"q":1}`, ResponseBody: `{"a":1}`},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "critique", InputTokens: 80, OutputTokens: 40, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "critique", InputTokens: 20, OutputTokens: 0, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "gpt-4o-mini", all[0].Model)
	assert.False(t, all[0].Success)
	assert.Equal(t, "rate limited", all[0].ErrorMessage)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	critiques, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "critique"})
	require.NoError(t, err)
	assert.Len(t, critiques, 2)

	first := all[len(all)-1]
	got, err := repo.GetLLMEvent(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"q":1}`, got.RequestBody)
	assert.Equal(t, `{"a":1}`, got.ResponseBody)
	assert.True(t, got.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "m1", Purpose: "critique", InputTokens: 10, OutputTokens: 5, LatencyMs: 100},
		{Model: "m1", Purpose: "critique", InputTokens: 30, OutputTokens: 15, LatencyMs: 300},
		{Model: "m2", Purpose: "lesson-annotate", InputTokens: 7, OutputTokens: 3, LatencyMs: 50},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{
		Purpose: "critique", Calls: 2, InputTokens: 40, OutputTokens: 20, AvgLatencyMs: 200,
	}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "m1", Calls: 2, InputTokens: 40, OutputTokens: 20}, byModel[0])
	assert.Equal(t, ModelUsage{Model: "m2", Calls: 1, InputTokens: 7, OutputTokens: 3}, byModel[1])
}

func TestLessonRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveLesson(ctx, LessonRecord{
		ID: "dynamic-a", English: "Good morning", CorrectAnswer: "Buenos días",
		Payload: `{"id":"dynamic-a"}`, CreatedAt: base,
	}))
	require.NoError(t, repo.SaveLesson(ctx, LessonRecord{
		ID: "dynamic-b", English: "Good night", CorrectAnswer: "Buenas noches",
		Payload: `{"id":"dynamic-b"}`, CreatedAt: base.Add(time.Hour),
	}))

	list, err := repo.ListLessons(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "dynamic-b", list[0].ID, "newest first")
	assert.True(t, list[1].CreatedAt.Equal(base))

	limited, err := repo.ListLessons(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	// Saving an existing id replaces its content.
	require.NoError(t, repo.SaveLesson(ctx, LessonRecord{
		ID: "dynamic-a", English: "Good morning!", CorrectAnswer: "¡Buenos días!",
		Payload: `{"id":"dynamic-a","v":2}`,
	}))
	rec, err := repo.GetLesson(ctx, "dynamic-a")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "¡Buenos días!", rec.CorrectAnswer)
	assert.Equal(t, `{"id":"dynamic-a","v":2}`, rec.Payload)

	missing, err := repo.GetLesson(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.SaveLesson(ctx, LessonRecord{}))
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "db.sqlite")
		t.Setenv("LANGUIFY_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("LANGUIFY_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "languify", "languify.db"), got)
	})
}
