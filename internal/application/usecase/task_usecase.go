package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

// TaskUseCase covers farm task CRUD.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUseCase builds the use case.
func NewTaskUseCase(taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo}
}

func (uc *TaskUseCase) fromRequest(in dto.TaskRequest) (*entity.Task, error) {
	if in.Title == "" || !entity.ValidTaskType(in.TaskType) {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	taskDate, err := parseDate(in.TaskDate)
	if err != nil {
		return nil, err
	}
	return &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		TaskType:    in.TaskType,
		Priority:    priority,
		TaskDate:    taskDate,
		Completed:   in.Completed,
		AssignedTo:  in.AssignedTo,
	}, nil
}

// Create validates and persists a new task owned by userID.
func (uc *TaskUseCase) Create(ctx context.Context, userID string, in dto.TaskRequest) (*entity.Task, error) {
	task, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	task.ID = uuid.New().String()
	task.CreatedBy = userID
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns one task or ErrNotFound.
func (uc *TaskUseCase) Get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

// List returns all tasks.
func (uc *TaskUseCase) List(ctx context.Context) ([]*entity.Task, error) {
	return uc.taskRepo.List(ctx)
}

// Update replaces a task's fields.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.TaskRequest) (*entity.Task, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	task.ID = current.ID
	task.CreatedBy = current.CreatedBy
	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = time.Now()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.taskRepo.Delete(ctx, id)
}
