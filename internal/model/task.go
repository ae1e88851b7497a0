package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Task represents a single active task
type Task struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=1,max=256"`
	Impact    Impact    `json:"impact" validate:"required,oneof=high low"`
	Effort    Effort    `json:"effort" validate:"required,oneof=low high"`
	Deadline  Deadline  `json:"deadline" validate:"required,oneof=today this_week this_sprint after_sprint"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// CompletedTask is a task that has been finished. Quadrant, score, tier and
// reason are frozen at the moment of completion and never recomputed.
type CompletedTask struct {
	Task
	Quadrant    Quadrant  `json:"quadrant"`
	Score       int       `json:"score"`
	Tier        Tier      `json:"tier"`
	Reason      string    `json:"reason"`
	CompletedAt time.Time `json:"completed_at"`
}

// ArchivedTask is a completed task the user has cleared from the done list,
// retained for history and restore.
type ArchivedTask struct {
	CompletedTask
	ArchivedAt time.Time `json:"archived_at"`
}

// NewTask creates a new task with a fresh ID and creation time
func NewTask(name string, impact Impact, effort Effort, deadline Deadline) Task {
	return Task{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Impact:    impact,
		Effort:    effort,
		Deadline:  deadline,
		CreatedAt: time.Now(),
	}
}

var validate = validator.New()

// Validate checks the task's fields. Invalid tasks are rejected at the store
// boundary before any mutation is applied.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	return nil
}
