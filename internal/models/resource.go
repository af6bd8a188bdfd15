package models

import (
	"time"

	"github.com/google/uuid"
)

type Resource struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	FileURL      string    `gorm:"type:text;not null" json:"fileUrl"`
	FilePublicID string    `gorm:"type:text" json:"-"` // blob store public id, kept so the blob can be destroyed
	UploadedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	UploadedBy   Profile   `gorm:"foreignKey:UploadedByID" json:"uploadedBy"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
