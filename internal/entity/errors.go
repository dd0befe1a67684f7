package entity

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskData    = errors.New("invalid task data")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
