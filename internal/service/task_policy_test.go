package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestTaskPolicy_PrepareForCreation(t *testing.T) {
	fixedNow := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	policy := NewTaskPolicy(func() time.Time { return fixedNow })

	tests := []struct {
		name      string
		candidate model.Task
		wantErr   error
	}{
		{
			name:      "valid_candidate",
			candidate: model.Task{Title: "Buy milk", Description: "2%"},
		},
		{
			name: "client_status_and_time_are_ignored",
			candidate: model.Task{
				ID:          "client-id",
				Title:       "Buy milk",
				Description: "2%",
				Status:      model.StatusCompleted,
				CreatedAt:   fixedNow.Add(-72 * time.Hour),
			},
		},
		{
			name:      "whitespace_title_is_not_empty",
			candidate: model.Task{Title: " ", Description: "x"},
		},
		{
			name:      "empty_title",
			candidate: model.Task{Title: "", Description: "x"},
			wantErr:   ErrValidation,
		},
		{
			name:      "empty_description",
			candidate: model.Task{Title: "x"},
			wantErr:   ErrValidation,
		},
		{
			name:      "both_missing",
			candidate: model.Task{},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.PrepareForCreation(tt.candidate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, model.Task{}, got)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, got.ID)
			assert.Equal(t, tt.candidate.Title, got.Title)
			assert.Equal(t, tt.candidate.Description, got.Description)
			assert.Equal(t, model.StatusNotStarted, got.Status)
			assert.True(t, fixedNow.Equal(got.CreatedAt))
		})
	}
}

func TestTaskPolicy_StampsUTC(t *testing.T) {
	local := time.Date(2025, time.November, 2, 1, 50, 0, 0, time.FixedZone("EDT", -4*3600))
	policy := NewTaskPolicy(func() time.Time { return local })

	got, err := policy.PrepareForCreation(model.Task{Title: "t", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, got.CreatedAt.Equal(local))
}

func TestTaskPolicy_DefaultClock(t *testing.T) {
	before := time.Now()
	got, err := NewTaskPolicy(nil).PrepareForCreation(model.Task{Title: "a", Description: "b"})
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.Before(before))
}

func TestTaskPolicy_ApplyUpdate(t *testing.T) {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	existing := &model.Task{
		ID:          "a1",
		Title:       "old",
		Description: "old description",
		Status:      model.StatusNotStarted,
		CreatedAt:   created,
	}

	NewTaskPolicy(nil).ApplyUpdate(existing, model.Task{
		ID:          "other",
		Title:       "",
		Description: "new description",
		Status:      "",
		CreatedAt:   created.Add(time.Hour),
	})

	assert.Equal(t, "a1", existing.ID)
	assert.Equal(t, "", existing.Title)
	assert.Equal(t, "new description", existing.Description)
	assert.Equal(t, "", existing.Status)
	assert.True(t, created.Equal(existing.CreatedAt))
}
