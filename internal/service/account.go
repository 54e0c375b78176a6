package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vosamoilenko/activity-bar-sub003/common"
	"github.com/vosamoilenko/activity-bar-sub003/common/id"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSlugTaken       = errors.New("account slug already exists")
)

const defaultGitLabBaseURL = "https://gitlab.com"

type CreateAccountParams struct {
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	BaseURL     string  `json:"base_url,omitempty"`
	Token       string  `json:"token"`
	Description *string `json:"description,omitempty"`
}

type ConnectionResult struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type AccountService interface {
	Create(ctx context.Context, params CreateAccountParams) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Delete(ctx context.Context, id int64) error
	TestConnection(ctx context.Context, id int64) (*ConnectionResult, error)
}

type accountService struct {
	accounts store.AccountStore
	gitlab   provider.GitLabService
}

func NewAccountService(accounts store.AccountStore, gitlab provider.GitLabService) AccountService {
	return &accountService{
		accounts: accounts,
		gitlab:   gitlab,
	}
}

func (s *accountService) Create(ctx context.Context, params CreateAccountParams) (*model.Account, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if params.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	prov := model.Provider(params.Provider)
	if prov != model.ProviderGitLab && prov != model.ProviderGitHub {
		return nil, fmt.Errorf("unsupported provider %q", params.Provider)
	}

	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" && prov == model.ProviderGitLab {
		baseURL = defaultGitLabBaseURL
	}

	slug, err := common.Slugify(params.Name, string(prov))
	if err != nil {
		return nil, err
	}

	if _, err := s.accounts.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking slug: %w", err)
	}

	account := &model.Account{
		ID:          id.New(),
		Name:        params.Name,
		Slug:        slug,
		Provider:    prov,
		BaseURL:     baseURL,
		Token:       params.Token,
		Description: params.Description,
		IsEnabled:   true,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return created, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) List(ctx context.Context) ([]model.Account, error) {
	return s.accounts.List(ctx)
}

func (s *accountService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := s.accounts.SetEnabled(ctx, id, enabled); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.accounts.Delete(ctx, id)
}

func (s *accountService) TestConnection(ctx context.Context, id int64) (*ConnectionResult, error) {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.Provider != model.ProviderGitLab {
		return nil, fmt.Errorf("connection test not supported for provider %q", account.Provider)
	}

	info, err := s.gitlab.TestConnection(ctx, account.BaseURL, account.Token)
	if err != nil {
		return nil, err
	}

	return &ConnectionResult{
		Username: info.Username,
		Name:     info.Name,
	}, nil
}
