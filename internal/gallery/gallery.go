package gallery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"gorm.io/gorm"
)

// GalleryItemDTO is the promotional carousel payload.
type GalleryItemDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TitleAr      string    `json:"title_ar"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateItemInput is the payload to add a carousel entry.
type CreateItemInput struct {
	Title        string
	TitleAr      string
	ImageURL     string
	IsActive     bool
	DisplayOrder int
}

// UpdateItemInput is a partial patch; nil fields keep their stored value.
type UpdateItemInput struct {
	Title        *string
	TitleAr      *string
	ImageURL     *string
	IsActive     *bool
	DisplayOrder *int
}

// Repository defines persistence operations for gallery items.
type Repository interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	Patch(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a gallery repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all items by ascending display order. Duplicate orders are
// allowed; created_at breaks the tie so a read stays stable.
func (r *repository) List(ctx context.Context) ([]models.GalleryItem, error) {
	var rows []models.GalleryItem
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Patch applies only the provided columns and reports how many rows matched.
func (r *repository) Patch(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.GalleryItem{}).
			Where("id = ?", id).
			Count(&count).
			Error
		return count, err
	}
	res := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryItem{}).Error
}

// Service exposes gallery management operations.
type Service interface {
	List(ctx context.Context) ([]GalleryItemDTO, error)
	Create(ctx context.Context, input CreateItemInput) (*GalleryItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService constructs a gallery service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("gallery repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]GalleryItemDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list gallery items")
	}

	dtos := make([]GalleryItemDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, newGalleryItemDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*GalleryItemDTO, error) {
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if input.ImageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url required")
	}

	item, err := s.repo.Create(ctx, &models.GalleryItem{
		Title:        input.Title,
		TitleAr:      input.TitleAr,
		ImageURL:     input.ImageURL,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert gallery item")
	}

	dto := newGalleryItemDTO(item)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) error {
	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.TitleAr != nil {
		updates["title_ar"] = *input.TitleAr
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}

	affected, err := s.repo.Patch(ctx, id, updates)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update gallery item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete gallery item")
	}
	return nil
}

func newGalleryItemDTO(item *models.GalleryItem) GalleryItemDTO {
	return GalleryItemDTO{
		ID:           item.ID,
		Title:        item.Title,
		TitleAr:      item.TitleAr,
		ImageURL:     item.ImageURL,
		IsActive:     item.IsActive,
		DisplayOrder: item.DisplayOrder,
		CreatedAt:    item.CreatedAt,
	}
}
