package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// People returns a copy of every person.
func (s *Service) People() []domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.people.list()
}

// PersonByID returns the person with id.
func (s *Service) PersonByID(id string) (domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people.get(id)
	if !ok {
		return domain.Person{}, fmt.Errorf("person %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// AddPerson creates a person. A current role without a start date starts
// today.
func (s *Service) AddPerson(ctx context.Context, p domain.Person) (domain.Person, error) {
	if err := validatePerson(p); err != nil {
		return domain.Person{}, err
	}
	p.ID = ""
	p.Name = strings.TrimSpace(p.Name)
	if p.Careers == nil {
		p.Careers = []domain.CareerRecord{}
	}
	if (p.CurrentRole != "" || p.CurrentCourseID != "") && p.CurrentSince == "" {
		p.CurrentSince = s.today()
	}

	created, err := create(ctx, s, &s.people, p, nil)
	if err != nil {
		return domain.Person{}, err
	}
	s.log.InfoContext(ctx, "person added", slog.String("person_id", created.ID))
	return created, nil
}

// UpdatePerson replaces the person with p.ID. When the current role or
// course changes, the previous employment is archived into Careers with
// today as its end date and the new one starts today unless p says
// otherwise.
func (s *Service) UpdatePerson(ctx context.Context, p domain.Person) (domain.Person, error) {
	if err := validatePerson(p); err != nil {
		return domain.Person{}, err
	}
	p.Name = strings.TrimSpace(p.Name)
	today := s.today()

	return update(ctx, s, &s.people, p.ID, func(old domain.Person) (domain.Person, error) {
		next := p
		if next.Careers == nil {
			next.Careers = []domain.CareerRecord{}
		}
		if !old.ChangesEmployment(p.CurrentRole, p.CurrentCourseID) {
			return next, nil
		}

		archived := old
		archived.Careers = append([]domain.CareerRecord{}, next.Careers...)
		courseName := ""
		if c, ok := s.courses.get(old.CurrentCourseID); ok {
			courseName = c.Name
		}
		archived.ArchiveCurrent(courseName, today)
		next.Careers = archived.Careers

		if (next.CurrentRole != "" || next.CurrentCourseID != "") &&
			(next.CurrentSince == "" || next.CurrentSince == old.CurrentSince) {
			next.CurrentSince = today
		}
		if next.CurrentRole == "" && next.CurrentCourseID == "" {
			next.CurrentSince = ""
		}
		return next, nil
	})
}

// DeletePerson removes the person.
func (s *Service) DeletePerson(ctx context.Context, id string) error {
	return remove(ctx, s, &s.people, id)
}
