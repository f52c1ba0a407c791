package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/store"
)

// execute runs the root command against an isolated database and config
// directory and returns what it wrote to stdout.
func execute(t *testing.T, dbPath, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LANGUIFY_DB_DRIVER", "sqlite")
	t.Setenv("LANGUIFY_DB_DSN", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "languify.db")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, testDB(t), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "languify "))
}

func TestVersionLine(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want string
	}{
		{"no build info", nil, "languify dev "},
		{"devel module", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "languify dev "},
		{"module version", &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, "languify v0.3.1 "},
		{"checkout", &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		}}, "languify dev (0123456789ab-dirty) "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := versionLine(tc.info)
			assert.True(t, strings.HasPrefix(got, tc.want), "got %q", got)
			assert.Contains(t, got, runtime.Version())
		})
	}
}

func TestScoreCommand(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, db, "", "score", "--json=false", "--lesson", "basic-greeting", "¿Cómo estás hoy?")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 100/100")
	assert.Contains(t, out, "Answer: ¿Cómo estás hoy?")

	out, err = execute(t, db, "", "score", "--json", "--lesson", "basic-greeting", "Cómo estás hoy")
	require.NoError(t, err)
	var res scoring.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 80, res.Score)
	assert.Equal(t, []string{scoring.HintMissingOpeningMark, scoring.HintMissingClosingMark}, res.Hints)
	assert.True(t, res.IsAnswerRevealed)
}

func TestScoreCommand_UnknownLesson(t *testing.T) {
	_, err := execute(t, testDB(t), "", "score", "--json=false", "--lesson", "nope", "hola")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lessons.ErrLessonNotFound))
}

func TestPracticeCommand(t *testing.T) {
	stdin := "Cómo hoy\n:tab\n¿Cómo estás hoy?\n:quit\n"
	out, err := execute(t, testDB(t), stdin, "practice", "--lesson", "basic-greeting")
	require.NoError(t, err)

	assert.Contains(t, out, "Translate to Spanish: How are you today?")
	assert.Contains(t, out, "[Structure]")
	assert.Contains(t, out, "Attempt 2")
	assert.Contains(t, out, "2 attempts, best 100/100")
}

func TestLessonsCommands(t *testing.T) {
	db := testDB(t)

	st, err := store.Open(context.Background(), store.DriverSQLite, db)
	require.NoError(t, err)
	require.NoError(t, lessons.NewLibrary(st.LessonRepo()).Save(context.Background(), &lessons.Lesson{
		ID:            "dynamic-test",
		English:       "Good night",
		CorrectAnswer: "Buenas noches",
		Vocabulary:    []lessons.VocabEntry{{English: "night", Spanish: "noches"}},
	}))
	require.NoError(t, st.Close())

	out, err := execute(t, db, "", "lessons", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "basic-greeting")
	assert.Contains(t, out, "built-in")
	assert.Contains(t, out, "dynamic-test")
	assert.Contains(t, out, "generated")

	out, err = execute(t, db, "", "lessons", "show", "--json", "food-question")
	require.NoError(t, err)
	var l lessons.Lesson
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "¿Qué quieres comer para el almuerzo?", l.CorrectAnswer)

	out, err = execute(t, db, "", "lessons", "show", "--json=false", "dynamic-test")
	require.NoError(t, err)
	assert.Contains(t, out, "Buenas noches")
	assert.Contains(t, out, "VOCABULARY")
}

func TestLLMCommands(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, db, "", "llm", "list", "--purpose", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")

	st, err := store.Open(context.Background(), store.DriverSQLite, db)
	require.NoError(t, err)
	repo := st.EventRepo()
	for _, e := range []store.LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson-annotate", InputTokens: 100, OutputTokens: 50, Success: true, RequestBody: `{"q":1}`},
		{Provider: "gemini", Model: "unknown-model", Purpose: "critique", InputTokens: 10, OutputTokens: 5, Success: false, ErrorMessage: "boom"},
	} {
		require.NoError(t, repo.AppendLLMRequest(context.Background(), e))
	}
	require.NoError(t, st.Close())

	out, err = execute(t, db, "", "llm", "list", "--purpose", "critique")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown-model")
	assert.NotContains(t, out, "gemini-2.0-flash")

	out, err = execute(t, db, "", "llm", "view", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `{"q":1}`)
	assert.Contains(t, out, "(not captured)")

	out, err = execute(t, db, "", "llm", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "lesson-annotate")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: unknown-model")

	_, err = execute(t, db, "", "llm", "view", "abc")
	assert.Error(t, err)
}
