package mapper

import "github.com/vosamoilenko/activity-bar-sub003/internal/model"

// EventMapper translates a provider-specific event signature into the
// unified activity type. A miss is a normal outcome, not a failure: the
// second return is false and the caller decides whether to drop or count
// the event.
type EventMapper interface {
	Classify(actionName, targetType string) (model.ActivityType, bool)
}
