package resolver

import (
	"time"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Inputs other than the filters decode straight into domain types; the
// schema input fields carry the domain JSON names.

// LogFilter narrows the logs query. Dates are inclusive.
type LogFilter struct {
	CourseID   *string            `json:"courseId"`
	Department *domain.Department `json:"department"`
	From       *string            `json:"from"`
	To         *string            `json:"to"`
}

// TodoFilter narrows the todos query.
type TodoFilter struct {
	Done     *bool   `json:"done"`
	CourseID *string `json:"courseId"`
}

// AddIssuesPayload is the result of addCourseIssues.
type AddIssuesPayload struct {
	Added  int           `json:"added"`
	Course domain.Course `json:"course"`
}

// User is a profile without its credentials.
type User struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       domain.UserRole   `json:"role"`
	Department domain.Department `json:"department"`
	Status     domain.UserStatus `json:"status"`
	CreatedAt  string            `json:"createdAt,omitempty"`
}

func userFromProfile(u domain.UserProfile) *User {
	out := &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Status:     u.Status,
	}
	if u.CreatedAt != nil {
		out.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
