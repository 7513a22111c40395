// Package ingest turns uploaded documents into log entries: it runs
// extraction, resolves the course each record talks about, optionally
// creates courses the business has not tracked yet and records key issues
// on the course.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/extraction"
)

type extractor interface {
	Extract(ctx context.Context, docs []extraction.Document, existingNames []string) ([]domain.ExtractedRecord, error)
}

type stateStore interface {
	CourseNames() []string
	FindCourseByName(name string) (domain.Course, bool)
	AddCourse(ctx context.Context, c domain.Course) (domain.Course, error)
	AddCourseIssues(ctx context.Context, courseID string, issues ...string) (int, error)
	AddLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error)
	AddTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
}

// Service runs document ingestion.
type Service struct {
	extractor  extractor
	state      stateStore
	log        *slog.Logger
	autoCreate bool
}

// NewService creates an ingest service. With autoCreate, records that name
// an unknown course create it.
func NewService(log *slog.Logger, ext extractor, state stateStore, autoCreate bool) *Service {
	return &Service{
		extractor:  ext,
		state:      state,
		log:        log.With("service", "ingest"),
		autoCreate: autoCreate,
	}
}

// Input is one ingestion request.
type Input struct {
	Documents []extraction.Document
	// Author is written into every log entry.
	Author string
}

// Result reports what an ingestion stored.
type Result struct {
	Logs           []domain.LogEntry
	CreatedCourses []domain.Course
	Todos          []domain.Todo
	IssuesAdded    int
	// Unresolved lists course names that matched no course and were not
	// created.
	Unresolved []string
}

// Ingest extracts records from in.Documents and stores them. Extraction
// failures are returned as *domain.ExtractionError. When storing fails
// midway, the returned Result holds what was stored before the failure.
func (s *Service) Ingest(ctx context.Context, in Input) (*Result, error) {
	records, err := s.extractor.Extract(ctx, in.Documents, s.state.CourseNames())
	if err != nil {
		return nil, fmt.Errorf("ingest.Ingest: %w", err)
	}

	res := &Result{
		Logs:           []domain.LogEntry{},
		CreatedCourses: []domain.Course{},
		Todos:          []domain.Todo{},
		Unresolved:     []string{},
	}
	for i, rec := range records {
		if err := s.store(ctx, in.Author, rec, res); err != nil {
			s.log.ErrorContext(ctx, "ingest stopped",
				slog.Int("record", i),
				slog.Int("records", len(records)),
				slog.String("error", err.Error()),
			)
			return res, fmt.Errorf("ingest.Ingest record %d: %w", i, err)
		}
	}

	s.log.InfoContext(ctx, "documents ingested",
		slog.Int("documents", len(in.Documents)),
		slog.Int("logs", len(res.Logs)),
		slog.Int("courses_created", len(res.CreatedCourses)),
		slog.Int("issues_added", res.IssuesAdded),
	)
	return res, nil
}

func (s *Service) store(ctx context.Context, author string, rec domain.ExtractedRecord, res *Result) error {
	course, found, err := s.resolveCourse(ctx, rec, res)
	if err != nil {
		return err
	}

	entry := domain.LogEntry{
		Date:       rec.Date,
		Author:     author,
		Department: domain.ParseDepartment(rec.Department),
		CourseName: rec.CourseName,
		Title:      rec.Title,
		Content:    composeContent(rec),
		Tags:       rec.Tags,
	}
	if found {
		entry.CourseID = course.ID
		entry.CourseName = course.Name

		if len(rec.KeyIssues) > 0 {
			added, err := s.state.AddCourseIssues(ctx, course.ID, rec.KeyIssues...)
			if err != nil {
				return fmt.Errorf("add issues to %s: %w", course.Name, err)
			}
			res.IssuesAdded += added
		}
	}
	if entry.Title == "" && entry.Content == "" {
		entry.Title = "Untitled document"
	}

	stored, err := s.state.AddLog(ctx, entry)
	if err != nil {
		return fmt.Errorf("add log: %w", err)
	}
	res.Logs = append(res.Logs, stored)

	if rec.DueDate != "" {
		todo, err := s.state.AddTodo(ctx, domain.Todo{
			Title:    followUpTitle(rec),
			DueDate:  rec.DueDate,
			Assignee: author,
			CourseID: stored.CourseID,
		})
		if err != nil {
			return fmt.Errorf("add follow-up: %w", err)
		}
		res.Todos = append(res.Todos, todo)
	}
	return nil
}

// resolveCourse maps the record's course name onto an existing course,
// creating it when allowed.
func (s *Service) resolveCourse(ctx context.Context, rec domain.ExtractedRecord, res *Result) (domain.Course, bool, error) {
	if domain.IsPlaceholderCourseName(rec.CourseName) {
		return domain.Course{}, false, nil
	}
	if c, ok := s.state.FindCourseByName(rec.CourseName); ok {
		return c, true, nil
	}
	if !s.autoCreate {
		res.Unresolved = append(res.Unresolved, rec.CourseName)
		return domain.Course{}, false, nil
	}

	course := domain.Course{Name: strings.TrimSpace(rec.CourseName)}
	if d := rec.NewCourseDetails; d != nil {
		course.Address = d.Address
		course.Holes = d.Holes
		course.Type = d.Type
	}
	created, err := s.state.AddCourse(ctx, course)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Another request created it in the meantime.
		if c, ok := s.state.FindCourseByName(rec.CourseName); ok {
			return c, true, nil
		}
	}
	if err != nil {
		return domain.Course{}, false, fmt.Errorf("create course %q: %w", course.Name, err)
	}

	s.log.InfoContext(ctx, "course created from document",
		slog.String("course_id", created.ID),
		slog.String("name", created.Name),
	)
	res.CreatedCourses = append(res.CreatedCourses, created)
	return created, true, nil
}

// composeContent appends the optional project fields to the record's text.
func composeContent(rec domain.ExtractedRecord) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(rec.Content))
	line := func(label, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
	}
	line("Project", rec.ProjectName)
	line("Contact", rec.ContactPerson)
	line("Due", rec.DueDate)
	return b.String()
}

func followUpTitle(rec domain.ExtractedRecord) string {
	switch {
	case rec.ProjectName != "":
		return "Follow up: " + rec.ProjectName
	case rec.Title != "":
		return "Follow up: " + rec.Title
	default:
		return "Follow up"
	}
}
