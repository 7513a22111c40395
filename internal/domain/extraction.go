package domain

import (
	"errors"
	"fmt"
)

// ExtractedRecord is one structured record produced by document extraction.
// It is transient: callers turn it into log entries and courses.
type ExtractedRecord struct {
	Title            string            `json:"title"`
	Content          string            `json:"content"`
	Date             string            `json:"date"`
	Department       string            `json:"department"`
	CourseName       string            `json:"courseName"`
	Tags             []string          `json:"tags"`
	ProjectName      string            `json:"projectName,omitempty"`
	ContactPerson    string            `json:"contactPerson,omitempty"`
	DueDate          string            `json:"dueDate,omitempty"`
	KeyIssues        []string          `json:"keyIssues"`
	NewCourseDetails *NewCourseDetails `json:"newCourseDetails,omitempty"`
}

// ExtractionCategory classifies an extraction failure for the caller.
type ExtractionCategory string

const (
	CategoryUnsupportedFormat  ExtractionCategory = "unsupported-format"
	CategorySizeExceeded       ExtractionCategory = "size-exceeded"
	CategoryAuthorization      ExtractionCategory = "authorization"
	CategoryRateLimited        ExtractionCategory = "rate-limited"
	CategoryServiceUnavailable ExtractionCategory = "service-unavailable"
	CategoryContentBlocked     ExtractionCategory = "content-policy-blocked"
	CategoryMalformedResponse  ExtractionCategory = "malformed-response"
	CategoryUnknown            ExtractionCategory = "unknown"
)

func (c ExtractionCategory) String() string { return string(c) }

// Transient reports whether a failure of this category may succeed on retry.
func (c ExtractionCategory) Transient() bool {
	return c == CategoryRateLimited || c == CategoryServiceUnavailable
}

// ExtractionError is a categorized extraction failure.
type ExtractionError struct {
	Category ExtractionCategory
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "extraction: " + string(e.Category)
	}
	return fmt.Sprintf("extraction: %s: %v", e.Category, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Is matches another *ExtractionError by category, so
// errors.Is(err, &ExtractionError{Category: CategoryRateLimited}) works.
func (e *ExtractionError) Is(target error) bool {
	var t *ExtractionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Category == e.Category
}

// NewExtractionError wraps err with a category.
func NewExtractionError(category ExtractionCategory, err error) *ExtractionError {
	return &ExtractionError{Category: category, Err: err}
}

// ExtractionCategoryOf returns the category of err, or CategoryUnknown when
// err is not an *ExtractionError.
func ExtractionCategoryOf(err error) ExtractionCategory {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Category
	}
	return CategoryUnknown
}
