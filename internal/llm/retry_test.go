package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var okReply = Reply{Content: json.RawMessage(`{"ok":true}`)}

func failWith(kind ErrorKind) Reply {
	return Reply{Err: &Error{Kind: kind, Err: errors.New(kind.String())}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		replies   []Reply
		wantErr   bool
		wantKind  ErrorKind
		wantCalls int
	}{
		{"first attempt succeeds", []Reply{okReply}, false, 0, 1},
		{"recovers from outage", []Reply{failWith(KindUnavailable), okReply}, false, 0, 2},
		{"recovers from rate limit", []Reply{failWith(KindRateLimited), failWith(KindRateLimited), okReply}, false, 0, 3},
		{"gives up after max attempts", []Reply{failWith(KindUnavailable), failWith(KindUnavailable), failWith(KindUnavailable), okReply}, true, KindUnavailable, 3},
		{"invalid response retried once", []Reply{failWith(KindInvalidResponse), failWith(KindInvalidResponse), okReply}, true, KindInvalidResponse, 2},
		{"truncation not retried", []Reply{failWith(KindTruncated), okReply}, true, KindTruncated, 1},
		{"rejection not retried", []Reply{failWith(KindRejected), okReply}, true, KindRejected, 1},
		{"unclassified error retried", []Reply{{Err: errors.New("connection reset")}, okReply}, false, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := NewScripted(tc.replies...)
			resp, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})

			assert.Len(t, mock.Requests(), tc.wantCalls)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsKind(err, tc.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
		})
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewScripted(
		Reply{Err: &Error{Kind: KindRateLimited, RetryAfter: 30 * time.Millisecond}},
		okReply,
	)
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	start := time.Now()
	_, err := WithRetry(mock, cfg).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	mock := NewScripted(failWith(KindUnavailable), okReply)
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, mock.Requests(), 1)
}

func TestRetry_SingleAttemptIsPassthrough(t *testing.T) {
	mock := NewScripted()
	cfg := retryConfig()
	cfg.MaxAttempts = 1
	assert.Same(t, Provider(mock), WithRetry(mock, cfg))
}

func TestRetry_DelayIsCapped(t *testing.T) {
	r := &retryProvider{cfg: RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}}
	for n := range 5 {
		d := r.delay(n, errors.New("x"))
		assert.LessOrEqual(t, d, time.Duration(float64(2*time.Second)*1.2), "attempt %d", n)
		assert.Greater(t, d, time.Duration(0))
	}
}
