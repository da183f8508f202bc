package catalog

import (
	"context"

	"andaman/internal/domain"
)

// IslandRepository defines the interface for island lookups
type IslandRepository interface {
	List(ctx context.Context) ([]domain.Island, error)
}

type Service struct {
	islands IslandRepository
}

func NewService(islands IslandRepository) *Service {
	return &Service{islands: islands}
}

func (s *Service) ListIslands(ctx context.Context) ([]domain.Island, error) {
	return s.islands.List(ctx)
}
