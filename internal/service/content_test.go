package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/metrics"
	"org-simulator/internal/service"
	"org-simulator/internal/vocabulary"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockContentProvider_UnknownDepartmentUsesGeneral(t *testing.T) {
	vocab := vocabulary.Default()
	mock := service.NewMockContentProvider(vocab, 1)

	items := mock.GenerateTaskContent(context.Background(), "Zorp", "Backlog", 3)

	require.Len(t, items, 3)
	for _, item := range items {
		base := strings.TrimSuffix(item.Title, " (Backlog)")
		assert.Contains(t, vocab.GeneralTaskTitles, base)
		assert.Contains(t, item.Description, item.Title)
		assert.Equal(t, "Standard task for "+item.Title+".", item.Description)
	}
}

func TestMockContentProvider_DepartmentTitles(t *testing.T) {
	vocab := vocabulary.Default()
	mock := service.NewMockContentProvider(vocab, 2)
	marketing, _ := vocab.Lookup("Marketing")

	for _, item := range mock.GenerateTaskContent(context.Background(), "Marketing", "Design", 50) {
		assert.Contains(t, marketing.TaskTitles, strings.TrimSuffix(item.Title, " (Design)"))
	}
}

func TestMockContentProvider_Deterministic(t *testing.T) {
	vocab := vocabulary.Default()
	a := service.NewMockContentProvider(vocab, 77)
	b := service.NewMockContentProvider(vocab, 77)

	for i := 0; i < 5; i++ {
		assert.Equal(t,
			a.GenerateTaskContent(context.Background(), "Engineering", "QA", 8),
			b.GenerateTaskContent(context.Background(), "Engineering", "QA", 8))
	}
}

func TestMockContentProvider_StageSuffixShare(t *testing.T) {
	mock := service.NewMockContentProvider(vocabulary.Default(), 3)

	suffixed := 0
	items := mock.GenerateTaskContent(context.Background(), "Engineering", "QA", 5000)
	for _, item := range items {
		if strings.HasSuffix(item.Title, " (QA)") {
			suffixed++
		}
	}
	assert.InDelta(t, 0.3, float64(suffixed)/5000, 0.03)
}

// fakeBackend returns canned results
type fakeBackend struct {
	items []service.TaskContent
	err   error
	calls int
}

func (f *fakeBackend) GenerateTaskContent(context.Context, string, string, int) ([]service.TaskContent, error) {
	f.calls++
	return f.items, f.err
}

func TestResilientContentProvider(t *testing.T) {
	vocab := vocabulary.Default()
	ctx := context.Background()

	t.Run("no backend uses mock", func(t *testing.T) {
		p := service.NewResilientContentProvider(nil, service.NewMockContentProvider(vocab, 1), time.Second, nil)
		items := p.GenerateTaskContent(ctx, "Zorp", "Backlog", 3)
		assert.Len(t, items, 3)
	})

	t.Run("backend error falls back and is counted", func(t *testing.T) {
		rec := metrics.New()
		backend := &fakeBackend{err: errors.New("rate limited")}
		p := service.NewResilientContentProvider(backend, service.NewMockContentProvider(vocab, 1), time.Second, rec)

		items := p.GenerateTaskContent(ctx, "Engineering", "QA", 4)
		assert.Len(t, items, 4)
		assert.Equal(t, 1, backend.calls)

		mf, err := rec.Registry().Gather()
		require.NoError(t, err)
		found := false
		for _, f := range mf {
			if f.GetName() == "orgsim_collaborator_fallbacks_total" {
				found = true
				assert.Equal(t, 1.0, f.GetMetric()[0].GetCounter().GetValue())
			}
		}
		assert.True(t, found)
	})

	t.Run("short reply is topped up", func(t *testing.T) {
		backend := &fakeBackend{items: []service.TaskContent{{Title: "Ship it", Description: "Ship the thing."}}}
		p := service.NewResilientContentProvider(backend, service.NewMockContentProvider(vocab, 1), time.Second, nil)

		items := p.GenerateTaskContent(ctx, "Engineering", "QA", 3)
		require.Len(t, items, 3)
		assert.Equal(t, "Ship it", items[0].Title)
	})

	t.Run("long reply is truncated", func(t *testing.T) {
		backend := &fakeBackend{items: make([]service.TaskContent, 6)}
		p := service.NewResilientContentProvider(backend, service.NewMockContentProvider(vocab, 1), time.Second, nil)
		assert.Len(t, p.GenerateTaskContent(ctx, "Engineering", "QA", 2), 2)
	})

	t.Run("zero count asks nobody", func(t *testing.T) {
		backend := &fakeBackend{}
		p := service.NewResilientContentProvider(backend, service.NewMockContentProvider(vocab, 1), time.Second, nil)
		assert.Empty(t, p.GenerateTaskContent(ctx, "Engineering", "QA", 0))
		assert.Zero(t, backend.calls)
	})
}

func newChatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Contains(t, req.Messages[len(req.Messages)-1].Content, "'Marketing' team")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"choices": []map[string]interface{}{{"index": 0, "message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
}

func TestOpenAIContentBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes fenced json", func(t *testing.T) {
		server := newChatServer(t, "```json\n[{\"title\":\"Draft launch post\",\"description\":\"Write the launch blog post.\"},{\"title\":\"\",\"description\":\"dropped\"}]\n```", http.StatusOK)
		defer server.Close()

		backend, err := service.NewOpenAIContentBackend("sk-test", "gpt-4o-mini", server.URL)
		require.NoError(t, err)

		items, err := backend.GenerateTaskContent(ctx, "Marketing", "Copywriting", 2)
		require.NoError(t, err)
		assert.Equal(t, []service.TaskContent{{Title: "Draft launch post", Description: "Write the launch blog post."}}, items)
	})

	t.Run("rejects prose", func(t *testing.T) {
		server := newChatServer(t, "Sure! Here are some tasks.", http.StatusOK)
		defer server.Close()

		backend, err := service.NewOpenAIContentBackend("sk-test", "gpt-4o-mini", server.URL)
		require.NoError(t, err)

		_, err = backend.GenerateTaskContent(ctx, "Marketing", "Copywriting", 2)
		assert.ErrorIs(t, err, apperrors.ErrInvalidContentResponse)
	})

	t.Run("server error", func(t *testing.T) {
		server := newChatServer(t, "", http.StatusInternalServerError)
		defer server.Close()

		backend, err := service.NewOpenAIContentBackend("sk-test", "gpt-4o-mini", server.URL)
		require.NoError(t, err)

		_, err = backend.GenerateTaskContent(ctx, "Marketing", "Copywriting", 2)
		assert.Error(t, err)
	})

	t.Run("requires api key", func(t *testing.T) {
		_, err := service.NewOpenAIContentBackend("", "gpt-4o-mini", "")
		assert.ErrorIs(t, err, apperrors.ErrContentBackendNotConfigured)
	})
}

func TestResilientContentProvider_BackendTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server watches the connection and cancels
		// r.Context() when the client gives up.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	backend, err := service.NewOpenAIContentBackend("sk-test", "gpt-4o-mini", server.URL)
	require.NoError(t, err)
	rec := metrics.New()
	p := service.NewResilientContentProvider(backend, service.NewMockContentProvider(vocabulary.Default(), 1), 50*time.Millisecond, rec)

	items := p.GenerateTaskContent(context.Background(), "Engineering", "QA", 3)
	assert.Len(t, items, 3)
	count, err := testutil.GatherAndCount(rec.Registry(), "orgsim_collaborator_fallbacks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
