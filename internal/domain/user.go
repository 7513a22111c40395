package domain

import (
	"strings"
	"time"
)

// UserProfile is an application account. Profiles are created PENDING by
// self-registration and moved to APPROVED or REJECTED by an administrator.
type UserProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Department   Department `json:"department"`
	Status       UserStatus `json:"status"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// CanLogin reports whether the profile may start a session.
func (u *UserProfile) CanLogin() bool { return u.Status == UserStatusApproved }

// NormalizeEmail lowercases and trims an address for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
