package models

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryNetwork        Category = "Network"
	CategoryFiber          Category = "Fiber"
	Category5G             Category = "5G"
	CategoryCertifications Category = "Certifications"
	CategoryGeneral        Category = "General"
)

// Valid reports whether the category is one of the allowed post categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNetwork, CategoryFiber, Category5G, CategoryCertifications, CategoryGeneral:
		return true
	}
	return false
}

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  Category  `gorm:"type:varchar(30);not null;index" json:"category"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Author    Profile   `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
