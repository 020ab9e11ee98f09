package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/logger"
	"org-simulator/internal/metrics"
	"org-simulator/internal/vocabulary"

	"github.com/sashabaranov/go-openai"
)

// stageSuffixRate is the share of mock titles that get the stage appended
const stageSuffixRate = 0.3

// TaskContent is a generated task title and one-sentence description
type TaskContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContentProvider returns exactly count title/description pairs for tasks of
// a department in a workflow stage. It never fails.
type ContentProvider interface {
	GenerateTaskContent(ctx context.Context, department, stage string, count int) []TaskContent
}

// ContentBackend is a generative source that may fail or return short lists
type ContentBackend interface {
	GenerateTaskContent(ctx context.Context, department, stage string, count int) ([]TaskContent, error)
}

// MockContentProvider draws titles from the vocabulary's task-title lists.
// Output is fully determined by the seed and the call sequence.
type MockContentProvider struct {
	vocab *vocabulary.Vocabulary
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewMockContentProvider creates a deterministic mock seeded with seed
func NewMockContentProvider(vocab *vocabulary.Vocabulary, seed uint64) *MockContentProvider {
	return &MockContentProvider{
		vocab: vocab,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// GenerateTaskContent returns count items. Departments without their own
// title list use the General list.
func (m *MockContentProvider) GenerateTaskContent(_ context.Context, department, stage string, count int) []TaskContent {
	_, titles := m.vocab.TaskTitles(department)

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]TaskContent, 0, max(count, 0))
	for i := 0; i < count; i++ {
		title := titles[m.rng.IntN(len(titles))]
		if m.rng.Float64() < stageSuffixRate {
			title = fmt.Sprintf("%s (%s)", title, stage)
		}
		items = append(items, TaskContent{
			Title:       title,
			Description: fmt.Sprintf("Standard task for %s.", title),
		})
	}
	return items
}

// OpenAIContentBackend asks an OpenAI-compatible chat endpoint for task content
type OpenAIContentBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIContentBackend creates a backend. An empty baseURL uses the
// public OpenAI endpoint.
func NewOpenAIContentBackend(apiKey, model, baseURL string) (*OpenAIContentBackend, error) {
	if apiKey == "" {
		return nil, apperrors.ErrContentBackendNotConfigured
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIContentBackend{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// GenerateTaskContent requests count items and decodes the JSON list reply
func (b *OpenAIContentBackend) GenerateTaskContent(ctx context.Context, department, stage string, count int) ([]TaskContent, error) {
	prompt := fmt.Sprintf(
		"Generate %d realistic, short task titles and 1-sentence descriptions for a '%s' team. "+
			"The tasks are currently in the '%s' stage.\n"+
			"Return ONLY a raw JSON list of objects with keys 'title' and 'description'. "+
			"Do not use Markdown formatting.",
		count, department, stage)

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You write task lists for a project-management tool."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", apperrors.ErrInvalidContentResponse)
	}
	return parseContentList(resp.Choices[0].Message.Content)
}

// parseContentList decodes a JSON list of {title, description}, tolerating
// a Markdown code fence around it
func parseContentList(raw string) ([]TaskContent, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.Trim(raw, "`\n ")
	}

	var items []TaskContent
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidContentResponse, err)
	}

	valid := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item.Title) != "" {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// ResilientContentProvider prefers the backend and falls back to the mock
// when the backend is absent, fails or times out. Short replies are topped up
// from the mock and long ones truncated.
type ResilientContentProvider struct {
	backend ContentBackend
	mock    *MockContentProvider
	timeout time.Duration
	metrics *metrics.Recorder
}

// NewResilientContentProvider creates a provider. backend may be nil.
func NewResilientContentProvider(backend ContentBackend, mock *MockContentProvider, timeout time.Duration, rec *metrics.Recorder) *ResilientContentProvider {
	return &ResilientContentProvider{backend: backend, mock: mock, timeout: timeout, metrics: rec}
}

func (p *ResilientContentProvider) GenerateTaskContent(ctx context.Context, department, stage string, count int) []TaskContent {
	if count <= 0 {
		return nil
	}
	if p.backend == nil {
		return p.mock.GenerateTaskContent(ctx, department, stage, count)
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := p.backend.GenerateTaskContent(callCtx, department, stage, count)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"department": department,
			"stage":      stage,
		}).Warn("Content backend failed, using mock content")
		p.metrics.CollaboratorFallback("content")
		return p.mock.GenerateTaskContent(ctx, department, stage, count)
	}

	if len(items) > count {
		items = items[:count]
	}
	if missing := count - len(items); missing > 0 {
		items = append(items, p.mock.GenerateTaskContent(ctx, department, stage, missing)...)
	}
	return items
}
