package models

import "github.com/google/uuid"

// Profile is the public projection of a user row that gets embedded in
// posts, comments, jobs and resources. It maps onto the users table but
// only carries the fields safe to show next to someone else's content.
type Profile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfileImage   string    `json:"profileImage"`
	Specialization string    `json:"specialization"`
}

func (Profile) TableName() string {
	return "users"
}
