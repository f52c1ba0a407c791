package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/languify/internal/store"
)

// recordingRepo is an in-memory store.EventRepo.
type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewScripted(Reply{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, repo, zap.NewNop())

	ctx := WithPurpose(context.Background(), "critique")
	_, err := p.Generate(ctx, Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hola"}},
		Schema:   testSchema(),
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "critique", ev.Purpose)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 3, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Equal(t, `{"ok":true}`, ev.ResponseBody)
	assert.Contains(t, ev.RequestBody, "[system]\nbe brief")
	assert.Contains(t, ev.RequestBody, "[user]\nhola")
	assert.Contains(t, ev.RequestBody, "[schema: test-object]")
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewScripted(Reply{Err: &Error{Kind: KindRateLimited, Err: errors.New("slow down")}})
	p := WithLogging(mock, repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "unknown", repo.events[0].Purpose)
	assert.True(t, strings.Contains(repo.events[0].ErrorMessage, "slow down"))
}

func TestLogging_KeepsInvalidOutput(t *testing.T) {
	repo := &recordingRepo{}
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewScripted(Reply{Err: &Error{
		Kind:    KindInvalidResponse,
		Content: json.RawMessage(`{"word":42}`),
		Err:     errors.New("schema mismatch"),
	}})
	p := WithLogging(mock, repo, zap.New(core))

	_, err := p.Generate(WithPurpose(context.Background(), "lesson-annotate"), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.Equal(t, `{"word":42}`, repo.events[0].ResponseBody)

	entries := logs.FilterMessage("llm call failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "invalid response", fields["kind"])
	assert.Equal(t, "lesson-annotate", fields["purpose"])
	assert.Equal(t, "llm", entries[0].LoggerName)
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewScripted(Reply{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo, zap.NewNop())

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewScripted(Reply{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, zap.NewNop())

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.Name())
	assert.Equal(t, "mock", p.ModelID())
}

// blockingProvider waits for the context to end.
type blockingProvider struct{ ScriptedProvider }

func (b *blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(&blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	mock := NewScripted()
	assert.Same(t, Provider(mock), WithTimeout(mock, 0))
}
