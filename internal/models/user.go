package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleProfessional Role = "professional"
	RoleRecruiter    Role = "recruiter"
	RoleAdmin        Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleProfessional, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Role           Role      `gorm:"type:varchar(20);not null;default:'professional'" json:"role"`
	Specialization string    `gorm:"type:varchar(100)" json:"specialization"`
	Experience     int       `gorm:"not null;default:0" json:"experience"`
	Skills         []string  `gorm:"serializer:json" json:"skills"`
	Bio            string    `gorm:"type:varchar(500)" json:"bio"`
	Location       string    `gorm:"type:varchar(100)" json:"location"`
	ProfileImage   string    `gorm:"type:text" json:"profileImage"`
	ProfileImageID string    `gorm:"type:text" json:"-"` // blob store public id, kept so a replaced image can be destroyed
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
