package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is declared for project task tracking. No component uses it yet.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  *string      `json:"assigned_to,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) String() string { return string(s) }

// ParseTaskStatus rejects anything outside the four known statuses.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(s); st {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return st, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func (s TaskStatus) MarshalText() ([]byte, error) {
	if _, err := ParseTaskStatus(string(s)); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (s *TaskStatus) UnmarshalText(b []byte) error {
	st, err := ParseTaskStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) String() string { return string(p) }

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return p, nil
	}
	return "", fmt.Errorf("unknown task priority %q", s)
}

func (p TaskPriority) MarshalText() ([]byte, error) {
	if _, err := ParseTaskPriority(string(p)); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

func (p *TaskPriority) UnmarshalText(b []byte) error {
	v, err := ParseTaskPriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
