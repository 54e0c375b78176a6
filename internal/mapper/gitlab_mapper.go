package mapper

import "github.com/vosamoilenko/activity-bar-sub003/internal/model"

// GitLab conflates "what happened" (action_name) and "to what" (target_type)
// into two fields; the lookup key joins them with "|". Push events carry no
// target, so they key on the action alone.
//
// Combinations absent from the table (joined, left, actions on Milestone,
// WikiPage, Snippet, Project, design management) are intentionally
// unclassified.
var gitlabActivityTypes = map[string]model.ActivityType{
	"pushed|":                model.ActivityCommit,
	"created|MergeRequest":   model.ActivityPullRequest,
	"updated|MergeRequest":   model.ActivityPullRequest,
	"closed|MergeRequest":    model.ActivityPullRequest,
	"reopened|MergeRequest":  model.ActivityPullRequest,
	"merged|MergeRequest":    model.ActivityPullRequest,
	"approved|MergeRequest":  model.ActivityCodeReview,
	"created|Issue":          model.ActivityIssue,
	"updated|Issue":          model.ActivityIssue,
	"closed|Issue":           model.ActivityIssue,
	"reopened|Issue":         model.ActivityIssue,
	"commented|Note":         model.ActivityIssueComment,
	"commented|MergeRequest": model.ActivityPullRequestComment,
	"commented|Issue":        model.ActivityIssueComment,
}

type GitLabEventMapper struct{}

func NewGitLabEventMapper() *GitLabEventMapper {
	return &GitLabEventMapper{}
}

// Classify looks up the action/target pair. Matching is exact and
// case-sensitive; unknown pairs return ("", false).
func (m *GitLabEventMapper) Classify(actionName, targetType string) (model.ActivityType, bool) {
	activityType, ok := gitlabActivityTypes[actionName+"|"+targetType]
	return activityType, ok
}
