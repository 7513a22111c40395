package domain

import "time"

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"

// LogEntry is one work log written by staff or extracted from a document.
type LogEntry struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Author     string     `json:"author"`
	Department Department `json:"department"`
	CourseID   string     `json:"courseId"`
	CourseName string     `json:"courseName"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	ImageURLs  []string   `json:"imageUrls"`
	Tags       []string   `json:"tags"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

var placeholderCourseNames = map[string]bool{
	"":        true,
	"-":       true,
	"unknown": true,
	"none":    true,
	"미지정":     true,
	"선택":      true,
}

// IsPlaceholderCourseName reports whether name carries no real course.
func IsPlaceholderCourseName(name string) bool {
	return placeholderCourseNames[NormalizeText(name)]
}

// Todo is a follow-up task, optionally tied to a course.
type Todo struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	DueDate   string     `json:"dueDate"`
	Assignee  string     `json:"assignee"`
	CourseID  string     `json:"courseId"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
