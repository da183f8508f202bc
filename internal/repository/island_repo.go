package repository

import (
	"context"
	"time"

	"andaman/internal/domain"

	"gorm.io/gorm"
)

type IslandRepository struct {
	db *gorm.DB
}

func NewIslandRepository(db *gorm.DB) *IslandRepository {
	return &IslandRepository{db: db}
}

type islandModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (islandModel) TableName() string { return "islands" }

func toDomainIsland(m islandModel) domain.Island {
	return domain.Island{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}

func (r *IslandRepository) Create(ctx context.Context, i *domain.Island) error {
	m := islandModel{ID: i.ID, Name: i.Name, Slug: i.Slug, CreatedAt: i.CreatedAt}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = toDomainIsland(m)
	return nil
}

func (r *IslandRepository) List(ctx context.Context) ([]domain.Island, error) {
	var ms []islandModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Island, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainIsland(m))
	}
	return out, nil
}
