package pets

import (
	"context"
	"errors"
	"fmt"

	"pet-adoption-workflow/internal/domain/workflow"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, workflow.Storage("list pets", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, workflow.Validation("pet id must be positive")
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, workflow.ErrNotFound) {
		return Pet{}, workflow.NotFound(fmt.Sprintf("pet %d not found", id))
	}
	if err != nil {
		return Pet{}, workflow.Storage(fmt.Sprintf("get pet %d", id), err)
	}
	return p, nil
}
