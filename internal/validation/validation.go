// Package validation holds the explicit field checks that gate every
// persistence call. Each entity gets one function returning the full
// list of violations instead of stopping at the first problem.
package validation

import (
	"regexp"
	"strings"

	"github.com/telconnect/telecom-network/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	maxTitleLength   = 200
	maxBioLength     = 500
	maxCommentLength = 1000
	minPasswordLen   = 6
)

// Violation describes a single failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the full set of failed constraints for one request.
// It implements error so services can return it directly.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the violations as an error, or nil when everything passed.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Registration validates a new account. Role must already be defaulted by
// the caller; admin cannot be self-assigned through the public API.
func Registration(name, email, password string, role models.Role) Violations {
	var v Violations
	if strings.TrimSpace(name) == "" {
		v = append(v, Violation{"name", "Name is required"})
	}
	v = append(v, Email(email)...)
	if password == "" {
		v = append(v, Violation{"password", "Password is required"})
	} else if len(password) < minPasswordLen {
		v = append(v, Violation{"password", "Password must be at least 6 characters"})
	}
	if role != models.RoleProfessional && role != models.RoleRecruiter {
		v = append(v, Violation{"role", "Role must be professional or recruiter"})
	}
	return v
}

// Email validates a single email address.
func Email(email string) Violations {
	if strings.TrimSpace(email) == "" {
		return Violations{{"email", "Email is required"}}
	}
	if !emailRegex.MatchString(email) {
		return Violations{{"email", "Please provide a valid email"}}
	}
	return nil
}

// UserProfile validates the mutable profile fields of a user update.
func UserProfile(experience *int, bio, password string) Violations {
	var v Violations
	if experience != nil && *experience < 0 {
		v = append(v, Violation{"experience", "Experience cannot be negative"})
	}
	if len(bio) > maxBioLength {
		v = append(v, Violation{"bio", "Bio cannot exceed 500 characters"})
	}
	if password != "" && len(password) < minPasswordLen {
		v = append(v, Violation{"password", "Password must be at least 6 characters"})
	}
	return v
}

// Post validates post fields; empty values are reported as missing, which
// is the right call on create. On update only populated fields are passed.
func Post(title, content string, category models.Category) Violations {
	var v Violations
	if strings.TrimSpace(title) == "" {
		v = append(v, Violation{"title", "Post title is required"})
	} else if len(title) > maxTitleLength {
		v = append(v, Violation{"title", "Title cannot exceed 200 characters"})
	}
	if strings.TrimSpace(content) == "" {
		v = append(v, Violation{"content", "Post content is required"})
	}
	if category == "" {
		v = append(v, Violation{"category", "Category is required"})
	} else if !category.Valid() {
		v = append(v, Violation{"category", "Category must be one of Network, Fiber, 5G, Certifications, General"})
	}
	return v
}

// Comment validates comment content.
func Comment(content string) Violations {
	if strings.TrimSpace(content) == "" {
		return Violations{{"content", "Comment content is required"}}
	}
	if len(content) > maxCommentLength {
		return Violations{{"content", "Comment cannot exceed 1000 characters"}}
	}
	return nil
}

// Job validates job posting fields.
func Job(title, company, description, location string) Violations {
	var v Violations
	if strings.TrimSpace(title) == "" {
		v = append(v, Violation{"title", "Job title is required"})
	} else if len(title) > maxTitleLength {
		v = append(v, Violation{"title", "Title cannot exceed 200 characters"})
	}
	if strings.TrimSpace(company) == "" {
		v = append(v, Violation{"company", "Company name is required"})
	}
	if strings.TrimSpace(description) == "" {
		v = append(v, Violation{"description", "Job description is required"})
	}
	if strings.TrimSpace(location) == "" {
		v = append(v, Violation{"location", "Location is required"})
	}
	return v
}

// Resource validates resource metadata. The file itself is checked by the
// handler before any blob upload happens.
func Resource(title, description string) Violations {
	var v Violations
	if strings.TrimSpace(title) == "" {
		v = append(v, Violation{"title", "Resource title is required"})
	} else if len(title) > maxTitleLength {
		v = append(v, Violation{"title", "Title cannot exceed 200 characters"})
	}
	if strings.TrimSpace(description) == "" {
		v = append(v, Violation{"description", "Resource description is required"})
	}
	return v
}
