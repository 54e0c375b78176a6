package store

import (
	"github.com/vosamoilenko/activity-bar-sub003/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Accounts() AccountStore {
	return newAccountStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) SyncRuns() SyncRunStore {
	return newSyncRunStore(s.queries)
}
