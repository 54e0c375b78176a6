package service

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

var _ = Describe("buildDigestPrompt", func() {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	It("includes the window, per-type counts, and recent items", func() {
		title := "Add rate limiter"
		prompt := buildDigestPrompt(from, to,
			[]model.ActivitySummary{
				{Type: model.ActivityCommit, Count: 12},
				{Type: model.ActivityPullRequest, Count: 3},
			},
			[]model.Activity{
				{Type: model.ActivityPullRequest, TargetTitle: &title, OccurredAt: to.AddDate(0, 0, -1)},
			},
		)

		Expect(prompt).To(ContainSubstring("2026-08-01T00:00:00Z to 2026-08-08T00:00:00Z"))
		Expect(prompt).To(ContainSubstring("commit: 12"))
		Expect(prompt).To(ContainSubstring("pull_request: 3"))
		Expect(prompt).To(ContainSubstring("Add rate limiter"))
	})

	It("says so when there is no activity", func() {
		prompt := buildDigestPrompt(from, to, nil, nil)

		Expect(prompt).To(ContainSubstring("(no activity)"))
		Expect(prompt).NotTo(ContainSubstring("Most recent items"))
	})

	It("tolerates activities without a title", func() {
		prompt := buildDigestPrompt(from, to,
			[]model.ActivitySummary{{Type: model.ActivityCommit, Count: 1}},
			[]model.Activity{{Type: model.ActivityCommit, OccurredAt: from}},
		)

		Expect(prompt).To(ContainSubstring("commit"))
	})
})
