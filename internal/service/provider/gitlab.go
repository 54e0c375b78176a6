package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

// Event is one raw provider event, normalized just enough for
// classification. Raw keeps the provider's own JSON encoding.
type Event struct {
	ID             int64
	ActionName     string
	TargetType     string
	TargetID       *int64
	TargetIID      *int64
	TargetTitle    string
	ProjectID      int64
	AuthorUsername string
	CreatedAt      time.Time
	Raw            json.RawMessage
}

type ConnectionInfo struct {
	Username string
	Name     string
}

// GitLabService talks to a GitLab instance on behalf of one account.
type GitLabService interface {
	TestConnection(ctx context.Context, baseURL, token string) (*ConnectionInfo, error)
	FetchContributionEvents(ctx context.Context, account *model.Account, window model.FetchWindow) ([]Event, error)
}

type gitLabService struct{}

func NewGitLabService() GitLabService {
	return &gitLabService{}
}

func (s *gitLabService) TestConnection(ctx context.Context, baseURL, token string) (*ConnectionInfo, error) {
	client, err := s.newClient(baseURL, token)
	if err != nil {
		return nil, err
	}

	user, _, err := client.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("validating token: %w", err)
	}

	return &ConnectionInfo{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *gitLabService) FetchContributionEvents(ctx context.Context, account *model.Account, window model.FetchWindow) ([]Event, error) {
	client, err := s.newClient(account.BaseURL, account.Token)
	if err != nil {
		return nil, err
	}

	// The contribution events API filters by whole days, so the window is
	// widened by one day on each side and trimmed precisely below.
	after := gitlab.ISOTime(window.Start.AddDate(0, 0, -1))
	before := gitlab.ISOTime(window.End.AddDate(0, 0, 1))

	opts := &gitlab.ListContributionEventsOptions{
		After:  &after,
		Before: &before,
		ListOptions: gitlab.ListOptions{
			Page:    1,
			PerPage: 100,
		},
	}

	var events []Event

	for {
		pageEvents, resp, err := client.Events.ListCurrentUserContributionEvents(opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("listing contribution events: %w", err)
		}

		for _, e := range pageEvents {
			if e.CreatedAt == nil {
				continue
			}
			occurredAt := *e.CreatedAt
			if occurredAt.Before(window.Start) || !occurredAt.Before(window.End) {
				continue
			}

			raw, err := json.Marshal(e)
			if err != nil {
				return nil, fmt.Errorf("encoding event %d: %w", e.ID, err)
			}

			event := Event{
				ID:             int64(e.ID),
				ActionName:     e.ActionName,
				TargetType:     e.TargetType,
				TargetTitle:    e.TargetTitle,
				ProjectID:      int64(e.ProjectID),
				AuthorUsername: e.AuthorUsername,
				CreatedAt:      occurredAt,
				Raw:            raw,
			}
			if e.TargetID != 0 {
				targetID := int64(e.TargetID)
				event.TargetID = &targetID
			}
			if e.TargetIID != 0 {
				targetIID := int64(e.TargetIID)
				event.TargetIID = &targetIID
			}

			events = append(events, event)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	slog.DebugContext(ctx, "fetched contribution events",
		"account_id", account.ID,
		"count", len(events),
		"window_start", window.Start,
		"window_end", window.End,
	)

	return events, nil
}

func (s *gitLabService) newClient(baseURL, token string) (*gitlab.Client, error) {
	apiURL := strings.TrimSuffix(baseURL, "/") + "/api/v4"
	return gitlab.NewClient(
		token,
		gitlab.WithBaseURL(apiURL),
	)
}
