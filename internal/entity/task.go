package entity

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

// The store keeps status as plain text, so the wire tokens are the
// stored tokens.
const (
	StatusOpen       TaskStatus = "aberto"
	StatusInProgress TaskStatus = "fazendo"
	StatusDone       TaskStatus = "finalizado"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateTaskRequest carries the recognized fields of a creation payload.
// Decoding into it drops anything else a client sends. Status is a pointer
// so an omitted status (defaulted later) stays distinguishable from an
// explicitly supplied invalid one.
type CreateTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      *TaskStatus `json:"status"`
}

// Validate reports every violated rule, one message per field. A status
// that is present must be an enum member; only an absent status is allowed
// through for defaulting.
func (r *CreateTaskRequest) Validate() []string {
	var messages []string

	if strings.TrimSpace(r.Title) == "" {
		messages = append(messages, "title should not be empty")
	}
	if strings.TrimSpace(r.Description) == "" {
		messages = append(messages, "description should not be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		messages = append(messages, statusEnumMessage)
	}

	return messages
}

// UpdateTaskRequest carries a partial update. Pointer fields distinguish
// "absent" from "present but empty".
type UpdateTaskRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
}

// Validate applies the creation rules to each present field. A payload
// with no recognized fields is valid.
func (r *UpdateTaskRequest) Validate() []string {
	var messages []string

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		messages = append(messages, "title should not be empty")
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		messages = append(messages, "description should not be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		messages = append(messages, statusEnumMessage)
	}

	return messages
}

var statusEnumMessage = fmt.Sprintf(
	"status must be one of the following values: %s, %s, %s",
	StatusOpen, StatusInProgress, StatusDone,
)

type TaskAction string

const (
	ActionCreated TaskAction = "created"
	ActionUpdated TaskAction = "updated"
	ActionDeleted TaskAction = "deleted"
)

// TaskEvent is published after every successful mutation. Task holds the
// state after the mutation, nil for deletions.
type TaskEvent struct {
	Action    TaskAction `json:"action"`
	TaskID    int        `json:"task_id"`
	Task      *Task      `json:"task,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
