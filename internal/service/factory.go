package service

import (
	"github.com/vosamoilenko/activity-bar-sub003/core/config"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	queue     queue.Producer
	openAICfg config.OpenAIConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, queue queue.Producer, openAICfg config.OpenAIConfig) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		queue:     queue,
		openAICfg: openAICfg,
	}
}

func (s *Services) Accounts() AccountService {
	return NewAccountService(s.stores.Accounts(), s.GitLab())
}

func (s *Services) Activities() ActivityService {
	return NewActivityService(s.stores.Activities())
}

func (s *Services) Sync() SyncService {
	return NewSyncService(s.stores.Accounts(), s.stores.SyncRuns(), s.txRunner, s.queue, nil)
}

// Digest is only usable when OpenAI is configured; callers must check
// the config before wiring routes to it.
func (s *Services) Digest() DigestService {
	return NewDigestService(s.Activities(), s.openAICfg, nil)
}

func (s *Services) GitLab() provider.GitLabService {
	return provider.NewGitLabService()
}
