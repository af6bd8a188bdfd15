package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Company        string    `gorm:"type:varchar(100);not null" json:"company"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Location       string    `gorm:"type:varchar(100);not null;index" json:"location"`
	RequiredSkills []string  `gorm:"serializer:json" json:"requiredSkills"`
	PostedByID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	PostedBy       Profile   `gorm:"foreignKey:PostedByID" json:"postedBy"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
