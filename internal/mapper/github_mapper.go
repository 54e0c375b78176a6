package mapper

import "github.com/vosamoilenko/activity-bar-sub003/internal/model"

// GitHub event payloads identify themselves by a single event type, so
// the target side of the key stays empty.
var githubActivityTypes = map[string]model.ActivityType{
	"PushEvent|":                     model.ActivityCommit,
	"PullRequestEvent|":              model.ActivityPullRequest,
	"PullRequestReviewEvent|":        model.ActivityCodeReview,
	"IssuesEvent|":                   model.ActivityIssue,
	"IssueCommentEvent|":             model.ActivityIssueComment,
	"PullRequestReviewCommentEvent|": model.ActivityPullRequestComment,
}

type GitHubEventMapper struct{}

func NewGitHubEventMapper() *GitHubEventMapper {
	return &GitHubEventMapper{}
}

func (m *GitHubEventMapper) Classify(actionName, targetType string) (model.ActivityType, bool) {
	activityType, ok := githubActivityTypes[actionName+"|"+targetType]
	return activityType, ok
}
