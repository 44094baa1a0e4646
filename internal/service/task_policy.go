package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/model"
)

// TaskPolicy holds the task lifecycle rules applied before persistence.
type TaskPolicy struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewTaskPolicy returns a policy stamping creation times with now.
// A nil now falls back to time.Now.
func NewTaskPolicy(now func() time.Time) *TaskPolicy {
	if now == nil {
		now = time.Now
	}
	return &TaskPolicy{validate: validator.New(), now: now}
}

// PrepareForCreation validates the candidate and returns the record to insert.
// Status and creation time (in UTC) are always server-assigned; the identifier
// is left empty for the store to fill.
func (p *TaskPolicy) PrepareForCreation(candidate model.Task) (model.Task, error) {
	if err := p.validate.StructPartial(candidate, "Title", "Description"); err != nil {
		return model.Task{}, ErrValidation
	}
	return model.Task{
		Title:       candidate.Title,
		Description: candidate.Description,
		Status:      model.StatusNotStarted,
		CreatedAt:   p.now().UTC(),
	}, nil
}

// ApplyUpdate overwrites title, description and status of existing with the
// incoming values. Nothing is validated; any label, even empty, is accepted.
func (p *TaskPolicy) ApplyUpdate(existing *model.Task, incoming model.Task) {
	existing.Title = incoming.Title
	existing.Description = incoming.Description
	existing.Status = incoming.Status
}
