package appstate

import (
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxTextLen     = 20000
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores the rest
)

func validDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func validateCourse(c domain.Course) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if c.Holes < 0 {
		errs = append(errs, domain.FieldError{Field: "holes", Message: "must not be negative"})
	}
	if c.Type != "" && !c.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be member or public"})
	}
	if c.Location != nil {
		if c.Location.Lat < -90 || c.Location.Lat > 90 || c.Location.Lng < -180 || c.Location.Lng > 180 {
			errs = append(errs, domain.FieldError{Field: "location", Message: "out of range"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePerson(p domain.Person) error {
	var errs []domain.FieldError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(p.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if p.Affinity < domain.MinAffinity || p.Affinity > domain.MaxAffinity {
		errs = append(errs, domain.FieldError{Field: "affinity", Message: "must be between -2 and 2"})
	}
	if !validDate(p.CurrentSince) {
		errs = append(errs, domain.FieldError{Field: "currentStartDate", Message: "must be YYYY-MM-DD"})
	}
	for _, c := range p.Careers {
		if !validDate(c.StartDate) || !validDate(c.EndDate) {
			errs = append(errs, domain.FieldError{Field: "careers", Message: "dates must be YYYY-MM-DD"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateLog(l domain.LogEntry) error {
	var errs []domain.FieldError

	if strings.TrimSpace(l.Title) == "" && strings.TrimSpace(l.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "title or content required"})
	}
	if len(l.Content) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	if !validDate(l.Date) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTodo(t domain.Todo) error {
	var errs []domain.FieldError

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !validDate(t.DueDate) {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds the self-registration form.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
