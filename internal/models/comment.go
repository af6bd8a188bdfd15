package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post and is removed together with it. There is no
// foreign key constraint to posts so the cascade is done in application code.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	User      Profile   `gorm:"foreignKey:UserID" json:"user"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
