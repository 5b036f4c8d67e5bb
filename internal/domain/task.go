package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// ParseTaskStatus acepta solo los valores canonicos; "In-Progress" se normaliza a "In Progress".
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	switch raw {
	case string(TaskStatusTodo):
		return TaskStatusTodo, true
	case string(TaskStatusInProgress), "In-Progress":
		return TaskStatusInProgress, true
	case string(TaskStatusDone):
		return TaskStatusDone, true
	}
	return "", false
}

// Valid reporta si s es uno de los tres estados persistibles. Cualquier estado puede pasar a cualquier otro.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	UserID    int64      `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NormalizeTitle recorta espacios; devuelve false si el titulo queda vacio.
func NormalizeTitle(raw string) (string, bool) {
	title := strings.TrimSpace(raw)
	return title, title != ""
}
