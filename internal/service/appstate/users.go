package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Session is an authenticated login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserProfile
}

func withoutHash(u domain.UserProfile) domain.UserProfile {
	u.PasswordHash = ""
	return u
}

// Users returns every profile without password hashes.
func (s *Service) Users() []domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.UserProfile, 0, len(s.users.items))
	for _, u := range s.users.items {
		out = append(out, withoutHash(u))
	}
	return out
}

// UserByID returns the profile with id without its password hash.
func (s *Service) UserByID(id string) (domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	if !ok {
		return domain.UserProfile{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return withoutHash(u), nil
}

func (s *Service) userByEmailLocked(email string) (domain.UserProfile, bool) {
	email = domain.NormalizeEmail(email)
	for _, u := range s.users.items {
		if domain.NormalizeEmail(u.Email) == email {
			return u, true
		}
	}
	return domain.UserProfile{}, false
}

// RegisterUser creates a PENDING staff profile. An administrator has to
// approve it before it can log in.
func (s *Service) RegisterUser(ctx context.Context, input RegisterInput) (domain.UserProfile, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("appstate.RegisterUser hash password: %w", err)
	}

	// Step 3: Create the profile; email uniqueness is checked under the lock.
	now := s.now().UTC().Truncate(time.Millisecond)
	profile := domain.UserProfile{
		Name:         input.Name,
		Email:        input.Email,
		Role:         domain.UserRoleStaff,
		Department:   domain.ParseDepartment(input.Department),
		Status:       domain.UserStatusPending,
		PasswordHash: string(hash),
		CreatedAt:    &now,
	}
	created, err := create(ctx, s, &s.users, profile, func(*domain.UserProfile) error {
		if _, taken := s.userByEmailLocked(input.Email); taken {
			return fmt.Errorf("appstate.RegisterUser %s: %w", input.Email, domain.ErrAlreadyExists)
		}
		return nil
	})
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID))
	return withoutHash(created), nil
}

// requireAdminLocked checks that actorID is an approved administrator.
func (s *Service) requireAdminLocked(actorID string) error {
	actor, ok := s.users.get(actorID)
	if !ok || !actor.CanLogin() || !actor.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// transition moves userID to next on behalf of actorID. from lists the
// statuses the move is allowed from.
func (s *Service) transition(ctx context.Context, actorID, userID string, next domain.UserStatus, from ...domain.UserStatus) (domain.UserProfile, error) {
	updated, err := update(ctx, s, &s.users, userID, func(old domain.UserProfile) (domain.UserProfile, error) {
		if err := s.requireAdminLocked(actorID); err != nil {
			return domain.UserProfile{}, err
		}
		if actorID == userID {
			return domain.UserProfile{}, domain.NewValidationError("user_id", "administrators cannot change their own status")
		}
		allowed := len(from) == 0
		for _, f := range from {
			if old.Status == f {
				allowed = true
			}
		}
		if !allowed || !old.Status.CanTransitionTo(next) {
			return domain.UserProfile{}, fmt.Errorf("user %s is %s: %w", userID, old.Status, domain.ErrConflict)
		}
		old.Status = next
		return old, nil
	})
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("actor_id", actorID),
		slog.String("user_id", userID),
		slog.String("status", next.String()),
	)
	return withoutHash(updated), nil
}

// ApproveUser moves a PENDING profile to APPROVED.
func (s *Service) ApproveUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error) {
	return s.transition(ctx, actorID, userID, domain.UserStatusApproved, domain.UserStatusPending)
}

// RejectUser moves a PENDING or APPROVED profile to REJECTED.
func (s *Service) RejectUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error) {
	return s.transition(ctx, actorID, userID, domain.UserStatusRejected, domain.UserStatusPending, domain.UserStatusApproved)
}

// ReinstateUser moves a REJECTED profile back to APPROVED.
func (s *Service) ReinstateUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error) {
	return s.transition(ctx, actorID, userID, domain.UserStatusApproved, domain.UserStatusRejected)
}

// ChangeUserRole sets the role of userID. Administrators cannot demote
// themselves.
func (s *Service) ChangeUserRole(ctx context.Context, actorID, userID string, role domain.UserRole) (domain.UserProfile, error) {
	if !role.IsValid() {
		return domain.UserProfile{}, domain.NewValidationError("role", "must be admin, manager or staff")
	}
	updated, err := update(ctx, s, &s.users, userID, func(old domain.UserProfile) (domain.UserProfile, error) {
		if err := s.requireAdminLocked(actorID); err != nil {
			return domain.UserProfile{}, err
		}
		if actorID == userID && !role.IsAdmin() {
			return domain.UserProfile{}, domain.NewValidationError("role", "administrators cannot demote themselves")
		}
		old.Role = role
		return old, nil
	})
	if err != nil {
		return domain.UserProfile{}, err
	}
	return withoutHash(updated), nil
}

// Login checks credentials and issues a session token. Unknown emails and
// wrong passwords are both ErrUnauthorized; valid credentials of a profile
// that is not approved yield ErrAccountPending or ErrAccountRejected.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	s.mu.RLock()
	user, ok := s.userByEmailLocked(email)
	s.mu.RUnlock()

	if !ok || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	switch user.Status {
	case domain.UserStatusApproved:
	case domain.UserStatusPending:
		return nil, domain.ErrAccountPending
	case domain.UserStatusRejected:
		return nil, domain.ErrAccountRejected
	default:
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("appstate.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return &Session{Token: token, ExpiresAt: expiresAt, User: withoutHash(user)}, nil
}

// ResolveSession returns the profile behind token. The session is invalid
// when the profile no longer exists or is no longer APPROVED. The role is
// taken from the profile, not the token, so role changes apply at once.
func (s *Service) ResolveSession(ctx context.Context, token string) (domain.UserProfile, error) {
	userID, _, err := s.tokens.ParseToken(token)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	s.mu.RLock()
	user, ok := s.users.get(userID)
	s.mu.RUnlock()

	if !ok || !user.CanLogin() {
		s.log.DebugContext(ctx, "session invalidated", slog.String("user_id", userID))
		return domain.UserProfile{}, domain.ErrUnauthorized
	}
	return withoutHash(user), nil
}

// EnsureAdmin makes sure an approved administrator with email exists and
// that password logs it in.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) (domain.UserProfile, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || len(password) < minPasswordLen {
		return domain.UserProfile{}, domain.NewValidationError("admin", "email and a password of at least 8 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("appstate.EnsureAdmin hash password: %w", err)
	}

	s.mu.RLock()
	existing, found := s.userByEmailLocked(email)
	s.mu.RUnlock()

	if found {
		updated, err := update(ctx, s, &s.users, existing.ID, func(old domain.UserProfile) (domain.UserProfile, error) {
			old.Role = domain.UserRoleAdmin
			old.Status = domain.UserStatusApproved
			old.PasswordHash = string(hash)
			return old, nil
		})
		if err != nil {
			return domain.UserProfile{}, err
		}
		return withoutHash(updated), nil
	}

	if name == "" {
		name = "Administrator"
	}
	now := s.now().UTC().Truncate(time.Millisecond)
	created, err := create(ctx, s, &s.users, domain.UserProfile{
		Name:         name,
		Email:        email,
		Role:         domain.UserRoleAdmin,
		Department:   domain.DepartmentManagement,
		Status:       domain.UserStatusApproved,
		PasswordHash: string(hash),
		CreatedAt:    &now,
	}, nil)
	if err != nil {
		return domain.UserProfile{}, err
	}
	s.log.InfoContext(ctx, "administrator created", slog.String("user_id", created.ID))
	return withoutHash(created), nil
}
