package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
)

type MapRepository interface {
	Create(ctx context.Context, m *model.GameMap) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GameMap, error)
	List(ctx context.Context, offset, limit int) ([]model.GameMap, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mapRepository struct {
	db *gorm.DB
}

func NewMapRepository(db *gorm.DB) MapRepository {
	return &mapRepository{db: db}
}

func (r *mapRepository) Create(ctx context.Context, m *model.GameMap) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mapRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GameMap, error) {
	var m model.GameMap
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mapRepository) List(ctx context.Context, offset, limit int) ([]model.GameMap, int64, error) {
	var maps []model.GameMap
	var total int64

	query := r.db.WithContext(ctx).Model(&model.GameMap{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("sort_order asc, created_at asc").Offset(offset).Limit(limit).Find(&maps).Error; err != nil {
		return nil, 0, err
	}
	return maps, total, nil
}

func (r *mapRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.GameMap{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *mapRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GameMap{}).Error
}

type HeroRepository interface {
	Create(ctx context.Context, h *model.Hero) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hero, error)
	List(ctx context.Context, offset, limit int) ([]model.Hero, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, h *model.Hero) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *heroRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hero, error) {
	var h model.Hero
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *heroRepository) List(ctx context.Context, offset, limit int) ([]model.Hero, int64, error) {
	var heroes []model.Hero
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Hero{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("sort_order asc, created_at asc").Offset(offset).Limit(limit).Find(&heroes).Error; err != nil {
		return nil, 0, err
	}
	return heroes, total, nil
}

func (r *heroRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Hero{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *heroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hero{}).Error
}
