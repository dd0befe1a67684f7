package repository

import (
	"context"
	"strconv"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.CreateTaskRequest) (*entity.Task, error) {

	query := `
	INSERT INTO "task" (title, description, status)
	VALUES ($1, $2, $3)
	RETURNING id, title, description, status, created_at, updated_at
	`

	var createdTask entity.Task
	err := r.db.QueryRow(ctx, query,
		task.Title,
		task.Description,
		*task.Status, // defaulted by the service before reaching the store
	).Scan(
		&createdTask.ID,
		&createdTask.Title,
		&createdTask.Description,
		&createdTask.Status,
		&createdTask.CreatedAt,
		&createdTask.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &createdTask, nil
}

// GetByTaskId returns nil, nil when no row matches.
func (r *TaskRepository) GetByTaskId(ctx context.Context, taskId int) (*entity.Task, error) {

	query := `
	SELECT id, title, description, status, created_at, updated_at
	FROM "task"
	WHERE id = $1
	`
	var task entity.Task

	err := r.db.QueryRow(ctx, query, taskId).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// Update rewrites only the columns present in updates. updated_at is always
// refreshed, even when updates is empty.
func (r *TaskRepository) Update(ctx context.Context, id int, updates map[string]interface{}) (*entity.Task, error) {
	setClause := ""
	args := []interface{}{}
	argIndex := 1

	for field, value := range updates {
		if field == "updated_at" {
			continue // maintained by the query itself
		}
		setClause += field + " = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, value)
		argIndex++
	}

	setClause += "updated_at = CURRENT_TIMESTAMP"

	query := `
        UPDATE task
        SET ` + setClause + `
        WHERE id = $` + strconv.Itoa(argIndex) + `
        RETURNING id, title, description, status, created_at, updated_at
    `
	args = append(args, id)

	var task entity.Task
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// row vanished between lookup and write
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM task WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *TaskRepository) List(ctx context.Context) ([]entity.Task, error) {
	query := `
        SELECT id, title, description, status, created_at, updated_at
        FROM task
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		var task entity.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}
