package repository

import (
	"context"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/entity"
)

// ITaskRepository is the record-store contract the task service depends on.
type ITaskRepository interface {
	Create(ctx context.Context, task *entity.CreateTaskRequest) (*entity.Task, error)
	GetByTaskId(ctx context.Context, taskId int) (*entity.Task, error)
	Update(ctx context.Context, id int, updates map[string]interface{}) (*entity.Task, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]entity.Task, error)
}
