package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

type fakeCategoryStore struct {
	CreateFn func(ctx context.Context, category *model.Category) error
	ListFn   func(ctx context.Context) ([]model.Category, error)
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *model.Category) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, category)
	}
	return nil
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	got, err := NewCategoryService(&fakeCategoryStore{}).List(ctx)
	require.ErrorIs(t, err, ErrEmpty)
	assert.Nil(t, got)

	want := []model.Category{{ID: "1", Name: "Casa"}}
	got, err = NewCategoryService(&fakeCategoryStore{
		ListFn: func(context.Context) ([]model.Category, error) { return want, nil },
	}).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewCategoryService(&fakeCategoryStore{
		ListFn: func(context.Context) ([]model.Category, error) { return nil, errDBDown },
	}).List(ctx)
	assert.ErrorIs(t, err, ErrUnhandled)
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	svc := NewCategoryService(&fakeCategoryStore{CreateFn: func(_ context.Context, c *model.Category) error {
		c.ID = "generated"
		return nil
	}})
	got, err := svc.Create(ctx, model.Category{ID: "client", Name: ""})
	require.NoError(t, err)
	assert.Equal(t, "generated", got.ID)
	assert.Equal(t, "", got.Name)

	_, err = NewCategoryService(&fakeCategoryStore{
		CreateFn: func(context.Context, *model.Category) error { return errDBDown },
	}).Create(ctx, model.Category{Name: "x"})
	assert.ErrorIs(t, err, ErrUnhandled)
}
