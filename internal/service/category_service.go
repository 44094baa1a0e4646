package service

import (
	"context"

	"taskboard/internal/model"
)

// CategoryStore is the persistence the category service depends on.
type CategoryStore interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
}

// CategoryService passes category operations through to the store.
type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// List returns every category, or ErrEmpty when there are none.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, unhandled(err)
	}
	return nonEmpty(categories)
}

// Create stores the candidate as given; only the identifier is assigned.
func (s *CategoryService) Create(ctx context.Context, candidate model.Category) (*model.Category, error) {
	category := model.Category{Name: candidate.Name}
	if err := s.store.Create(ctx, &category); err != nil {
		return nil, unhandled(err)
	}
	return &category, nil
}
