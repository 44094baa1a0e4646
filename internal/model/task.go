package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status labels with a meaning to the server. Any other label is accepted.
const (
	StatusNotStarted = "not started"
	StatusCompleted  = "Concluída"
)

// Task represents a single to-do item.
type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `gorm:"index" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

// BeforeCreate assigns an identifier when none is set and stores the
// creation time in UTC so rows sort by instant.
func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if !t.CreatedAt.IsZero() {
		t.CreatedAt = t.CreatedAt.UTC()
	}
	return nil
}
