package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vosamoilenko/activity-bar-sub003/core/config"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

const digestSystemPrompt = `You summarize a developer's recent activity across code hosting accounts.
Write a short plain-text digest: lead with overall volume, then call out notable
merge request and review work. Do not invent activity that is not in the data.`

type DigestResult struct {
	Digest      string    `json:"digest"`
	Model       string    `json:"model"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Activities  int       `json:"activities"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DigestService produces a natural-language summary of recent activity.
type DigestService interface {
	Generate(ctx context.Context, from, to time.Time) (*DigestResult, error)
}

type digestService struct {
	activities ActivityService
	client     openai.Client
	model      string
	logger     *slog.Logger
}

func NewDigestService(activities ActivityService, cfg config.OpenAIConfig, logger *slog.Logger) DigestService {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &digestService{
		activities: activities,
		client:     openai.NewClient(opts...),
		model:      cfg.Model,
		logger:     logger,
	}
}

func (s *digestService) Generate(ctx context.Context, from, to time.Time) (*DigestResult, error) {
	from, to = normalizeRange(from, to)

	summaries, err := s.activities.Summary(ctx, 0, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading summary: %w", err)
	}

	recent, err := s.activities.List(ctx, ActivityQuery{From: from, To: to, Limit: 50})
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	var total int64
	for _, s := range summaries {
		total += s.Count
	}

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(digestSystemPrompt),
			openai.UserMessage(buildDigestPrompt(from, to, summaries, recent)),
		},
		MaxCompletionTokens: openai.Int(1024),
	})
	if err != nil {
		return nil, fmt.Errorf("openai digest: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	s.logger.DebugContext(ctx, "digest generated",
		"model", s.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return &DigestResult{
		Digest:      resp.Choices[0].Message.Content,
		Model:       s.model,
		From:        from,
		To:          to,
		Activities:  int(total),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func buildDigestPrompt(from, to time.Time, summaries []model.ActivitySummary, recent []model.Activity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Window: %s to %s\n\n", from.Format(time.RFC3339), to.Format(time.RFC3339))

	b.WriteString("Counts by type:\n")
	if len(summaries) == 0 {
		b.WriteString("  (no activity)\n")
	}
	for _, s := range summaries {
		fmt.Fprintf(&b, "  %s: %d\n", s.Type, s.Count)
	}

	if len(recent) > 0 {
		b.WriteString("\nMost recent items:\n")
		for _, a := range recent {
			title := ""
			if a.TargetTitle != nil {
				title = *a.TargetTitle
			}
			fmt.Fprintf(&b, "  [%s] %s %s\n", a.OccurredAt.Format("2006-01-02"), a.Type, title)
		}
	}

	return b.String()
}
