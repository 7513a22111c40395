package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Logs returns a copy of every log entry.
func (s *Service) Logs() []domain.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs.list()
}

// LogByID returns the log entry with id.
func (s *Service) LogByID(id string) (domain.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.logs.get(id)
	if !ok {
		return domain.LogEntry{}, fmt.Errorf("log %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

// denormalizeLocked fills CourseName from CourseID when the name is empty
// or a placeholder, and CourseID from a matching course name when the id
// is missing.
func (s *Service) denormalizeLocked(l *domain.LogEntry) {
	if l.CourseID != "" {
		if domain.IsPlaceholderCourseName(l.CourseName) {
			if c, ok := s.courses.get(l.CourseID); ok {
				l.CourseName = c.Name
			}
		}
		return
	}
	if domain.IsPlaceholderCourseName(l.CourseName) {
		return
	}
	if c, ok := s.findCourseLocked(l.CourseName); ok {
		l.CourseID = c.ID
		l.CourseName = c.Name
	}
}

func (s *Service) normalizeLog(l *domain.LogEntry) {
	l.Title = strings.TrimSpace(l.Title)
	if l.Date == "" {
		l.Date = s.today()
	}
	l.Department = domain.ParseDepartment(string(l.Department))
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.ImageURLs == nil {
		l.ImageURLs = []string{}
	}
}

// AddLog creates a log entry. Date defaults to today and CreatedAt to now.
func (s *Service) AddLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error) {
	if err := validateLog(l); err != nil {
		return domain.LogEntry{}, err
	}
	l.ID = ""
	s.normalizeLog(&l)
	if l.CreatedAt == nil {
		now := s.now().UTC().Truncate(time.Millisecond)
		l.CreatedAt = &now
	}

	created, err := create(ctx, s, &s.logs, l, func(l *domain.LogEntry) error {
		s.denormalizeLocked(l)
		return nil
	})
	if err != nil {
		return domain.LogEntry{}, err
	}

	s.log.InfoContext(ctx, "log added",
		slog.String("log_id", created.ID),
		slog.String("course_id", created.CourseID),
	)
	return created, nil
}

// UpdateLog replaces the log entry with l.ID. CreatedAt is preserved.
func (s *Service) UpdateLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error) {
	if err := validateLog(l); err != nil {
		return domain.LogEntry{}, err
	}
	s.normalizeLog(&l)

	return update(ctx, s, &s.logs, l.ID, func(old domain.LogEntry) (domain.LogEntry, error) {
		next := l
		if next.CreatedAt == nil {
			next.CreatedAt = old.CreatedAt
		}
		s.denormalizeLocked(&next)
		return next, nil
	})
}

// DeleteLog removes the log entry.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	return remove(ctx, s, &s.logs, id)
}
