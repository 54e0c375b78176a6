package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vosamoilenko/activity-bar-sub003/core/db/sqlc"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

type accountStore struct {
	queries *sqlc.Queries
}

func newAccountStore(queries *sqlc.Queries) AccountStore {
	return &accountStore{queries: queries}
}

func (s *accountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	row, err := s.queries.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAccountModel(row), nil
}

func (s *accountStore) GetBySlug(ctx context.Context, slug string) (*model.Account, error) {
	row, err := s.queries.GetAccountBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAccountModel(row), nil
}

func (s *accountStore) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	row, err := s.queries.CreateAccount(ctx, sqlc.CreateAccountParams{
		ID:          account.ID,
		Name:        account.Name,
		Slug:        account.Slug,
		Provider:    string(account.Provider),
		BaseUrl:     account.BaseURL,
		Token:       account.Token,
		Description: account.Description,
		IsEnabled:   account.IsEnabled,
	})
	if err != nil {
		return nil, err
	}
	return toAccountModel(row), nil
}

func (s *accountStore) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	rowsAffected, err := s.queries.SetAccountEnabled(ctx, sqlc.SetAccountEnabledParams{
		ID:        id,
		IsEnabled: enabled,
	})
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *accountStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteAccount(ctx, id)
}

func (s *accountStore) List(ctx context.Context) ([]model.Account, error) {
	rows, err := s.queries.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]model.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, *toAccountModel(row))
	}
	return accounts, nil
}

func toAccountModel(row sqlc.Account) *model.Account {
	return &model.Account{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Provider:    model.Provider(row.Provider),
		BaseURL:     row.BaseUrl,
		Token:       row.Token,
		Description: row.Description,
		IsEnabled:   row.IsEnabled,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
