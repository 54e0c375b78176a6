package queue

type TaskType string

const (
	TaskTypeAccountSync TaskType = "account_sync"
)
