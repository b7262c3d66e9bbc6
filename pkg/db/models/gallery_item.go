package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is one promotional carousel entry with a bilingual title.
// Display order uniqueness is not enforced; ties sort by created_at so the
// order stays stable within a single read.
type GalleryItem struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title        string    `gorm:"column:title;not null"`
	TitleAr      string    `gorm:"column:title_ar"`
	ImageURL     string    `gorm:"column:image_url;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
