package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/entity"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/repository"
)

// EventPublisher delivers task lifecycle events to interested consumers.
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error
}

// TaskService owns all task CRUD rules. Storage failures never leave this
// layer raw: every error returned wraps one of the entity sentinels.
type TaskService struct {
	taskRepo repository.ITaskRepository
	events   EventPublisher
}

// NewTaskService wires the service to a record store and an optional event
// publisher (nil disables event emission).
func NewTaskService(taskRepo repository.ITaskRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]entity.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID int) (*entity.Task, error) {
	task, err := s.taskRepo.GetByTaskId(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	if req.Status == nil {
		status := entity.StatusOpen
		req.Status = &status
	}

	task, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidTaskData, err)
	}

	s.publishEvent(ctx, entity.ActionCreated, task.ID, task)

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID int, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	// resolve first so an absent task surfaces as not-found, never as a
	// write failure
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	// an empty payload is still a valid update: the row is rewritten and
	// updated_at refreshed
	updatedTask, err := s.taskRepo.Update(ctx, taskID, updates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidTaskData, err)
	}
	if updatedTask == nil {
		return nil, entity.ErrTaskNotFound
	}

	s.publishEvent(ctx, entity.ActionUpdated, taskID, updatedTask)

	return updatedTask, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID int) error {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	s.publishEvent(ctx, entity.ActionDeleted, taskID, nil)

	return nil
}

// publishEvent is best-effort: a broker failure is logged and the request
// still succeeds.
func (s *TaskService) publishEvent(ctx context.Context, action entity.TaskAction, taskID int, task *entity.Task) {
	if s.events == nil {
		return
	}

	event := &entity.TaskEvent{
		Action:    action,
		TaskID:    taskID,
		Task:      task,
		Timestamp: time.Now(),
	}

	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		log.Printf("failed to publish %s event for task %d: %v", action, taskID, err)
	}
}
