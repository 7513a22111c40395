package appstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Courses returns a copy of every course.
func (s *Service) Courses() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courses.list()
}

// CourseByID returns the course with id.
func (s *Service) CourseByID(id string) (domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses.get(id)
	if !ok {
		return domain.Course{}, fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// CourseNames returns the names of every course in order.
func (s *Service) CourseNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courseNamesLocked()
}

func (s *Service) courseNamesLocked() []string {
	names := make([]string, 0, len(s.courses.items))
	for _, c := range s.courses.items {
		names = append(names, c.Name)
	}
	return names
}

// FindCourseByName resolves a free-form course name to an existing course
// with domain.MatchCourseName.
func (s *Service) FindCourseByName(name string) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCourseLocked(name)
}

func (s *Service) findCourseLocked(name string) (domain.Course, bool) {
	match, ok := domain.MatchCourseName(name, s.courseNamesLocked())
	if !ok {
		return domain.Course{}, false
	}
	for _, c := range s.courses.items {
		if c.Name == match {
			return c, true
		}
	}
	return domain.Course{}, false
}

// courseNameTakenLocked reports whether another course already uses name.
func (s *Service) courseNameTakenLocked(name, exceptID string) bool {
	for _, c := range s.courses.items {
		if c.ID != exceptID && domain.SameName(c.Name, name) {
			return true
		}
	}
	return false
}

// AddCourse creates a course. Names are unique under NormalizeText.
func (s *Service) AddCourse(ctx context.Context, c domain.Course) (domain.Course, error) {
	if err := validateCourse(c); err != nil {
		return domain.Course{}, err
	}
	c.ID = ""
	c.Name = strings.TrimSpace(c.Name)
	if c.Issues == nil {
		c.Issues = []string{}
	}

	created, err := create(ctx, s, &s.courses, c, func(*domain.Course) error {
		if s.courseNameTakenLocked(c.Name, "") {
			return fmt.Errorf("course %q: %w", c.Name, domain.ErrAlreadyExists)
		}
		return nil
	})
	if err != nil {
		return domain.Course{}, err
	}

	s.log.InfoContext(ctx, "course added",
		slog.String("course_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// UpdateCourse replaces the course with c.ID. Renaming onto another
// course's name is rejected.
func (s *Service) UpdateCourse(ctx context.Context, c domain.Course) (domain.Course, error) {
	if err := validateCourse(c); err != nil {
		return domain.Course{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Issues == nil {
		c.Issues = []string{}
	}

	return update(ctx, s, &s.courses, c.ID, func(domain.Course) (domain.Course, error) {
		if s.courseNameTakenLocked(c.Name, c.ID) {
			return domain.Course{}, fmt.Errorf("course %q: %w", c.Name, domain.ErrAlreadyExists)
		}
		return c, nil
	})
}

// AddCourseIssues appends issues the course does not list yet and returns
// how many were added. Nothing is persisted when none are new.
func (s *Service) AddCourseIssues(ctx context.Context, courseID string, issues ...string) (int, error) {
	added := 0
	_, err := update(ctx, s, &s.courses, courseID, func(old domain.Course) (domain.Course, error) {
		next := old
		next.Issues = append([]string{}, old.Issues...)
		added = next.AddIssues(issues...)
		if added == 0 {
			return domain.Course{}, errNoChange
		}
		return next, nil
	})
	if errors.Is(err, errNoChange) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return added, nil
}

// DeleteCourse removes the course. Logs and people that reference it keep
// their denormalised course name.
func (s *Service) DeleteCourse(ctx context.Context, id string) error {
	if err := remove(ctx, s, &s.courses, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "course deleted", slog.String("course_id", id))
	return nil
}
