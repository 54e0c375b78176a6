package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"

	"github.com/vosamoilenko/activity-bar-sub003/core/config"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

// Document is the flattened activity shape stored in Typesense.
type Document struct {
	ID             string `json:"id"`
	AccountID      int64  `json:"account_id"`
	Provider       string `json:"provider"`
	ActivityType   string `json:"activity_type"`
	TargetTitle    string `json:"target_title"`
	AuthorUsername string `json:"author_username"`
	OccurredAt     int64  `json:"occurred_at"`
}

type Hit struct {
	ActivityID  int64              `json:"activity_id"`
	AccountID   int64              `json:"account_id"`
	Type        model.ActivityType `json:"type"`
	TargetTitle string             `json:"target_title"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// Index provides full-text search over activity titles.
type Index interface {
	EnsureCollection(ctx context.Context) error
	IndexActivity(ctx context.Context, activity *model.Activity) error
	Search(ctx context.Context, query string, limit int) ([]Hit, error)
}

type typesenseIndex struct {
	client     *typesense.Client
	collection string
	logger     *slog.Logger
}

func NewTypesenseIndex(cfg config.TypesenseConfig, logger *slog.Logger) Index {
	if logger == nil {
		logger = slog.Default()
	}
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(10*time.Second),
	)
	return &typesenseIndex{
		client:     client,
		collection: cfg.Collection,
		logger:     logger,
	}
}

func (i *typesenseIndex) EnsureCollection(ctx context.Context) error {
	schema := &api.CollectionSchema{
		Name: i.collection,
		Fields: []api.Field{
			{Name: "account_id", Type: "int64", Facet: pointer.True()},
			{Name: "provider", Type: "string", Facet: pointer.True()},
			{Name: "activity_type", Type: "string", Facet: pointer.True()},
			{Name: "target_title", Type: "string"},
			{Name: "author_username", Type: "string", Optional: pointer.True()},
			{Name: "occurred_at", Type: "int64", Sort: pointer.True()},
		},
		DefaultSortingField: pointer.String("occurred_at"),
	}

	if _, err := i.client.Collections().Create(ctx, schema); err != nil {
		// Collection already existing is fine across restarts.
		if _, getErr := i.client.Collection(i.collection).Retrieve(ctx); getErr == nil {
			return nil
		}
		return fmt.Errorf("creating collection %s: %w", i.collection, err)
	}
	return nil
}

func (i *typesenseIndex) IndexActivity(ctx context.Context, activity *model.Activity) error {
	doc, ok := newDocument(activity)
	if !ok {
		// Push events carry no title worth searching.
		return nil
	}

	if _, err := i.client.Collection(i.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("indexing activity %d: %w", activity.ID, err)
	}
	return nil
}

// newDocument flattens an activity for indexing. Returns false for
// activities without a title, which are not worth searching.
func newDocument(activity *model.Activity) (Document, bool) {
	title := ""
	if activity.TargetTitle != nil {
		title = *activity.TargetTitle
	}
	if title == "" {
		return Document{}, false
	}

	author := ""
	if activity.AuthorUsername != nil {
		author = *activity.AuthorUsername
	}

	return Document{
		ID:             strconv.FormatInt(activity.ID, 10),
		AccountID:      activity.AccountID,
		Provider:       string(activity.Provider),
		ActivityType:   string(activity.Type),
		TargetTitle:    title,
		AuthorUsername: author,
		OccurredAt:     activity.OccurredAt.Unix(),
	}, true
}

func (i *typesenseIndex) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}

	result, err := i.client.Collection(i.collection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("target_title"),
		SortBy:  pointer.String("occurred_at:desc"),
		PerPage: pointer.Int(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("searching activities: %w", err)
	}

	if result.Hits == nil {
		return []Hit{}, nil
	}

	hits := make([]Hit, 0, len(*result.Hits))
	for _, h := range *result.Hits {
		if h.Document == nil {
			continue
		}
		doc := *h.Document

		hit := Hit{
			TargetTitle: docString(doc, "target_title"),
			Type:        model.ActivityType(docString(doc, "activity_type")),
		}
		if id, err := strconv.ParseInt(docString(doc, "id"), 10, 64); err == nil {
			hit.ActivityID = id
		}
		hit.AccountID = docInt64(doc, "account_id")
		if ts := docInt64(doc, "occurred_at"); ts != 0 {
			hit.OccurredAt = time.Unix(ts, 0).UTC()
		}

		hits = append(hits, hit)
	}

	i.logger.DebugContext(ctx, "search completed", "query", query, "hits", len(hits))
	return hits, nil
}

func docString(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docInt64(doc map[string]interface{}, key string) int64 {
	switch v := doc[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}
