package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// stateStore is the slice of the application state the record endpoints
// read and write.
type stateStore interface {
	Courses() []domain.Course
	CourseByID(id string) (domain.Course, error)
	FindCourseByName(name string) (domain.Course, bool)
	AddCourse(ctx context.Context, c domain.Course) (domain.Course, error)
	UpdateCourse(ctx context.Context, c domain.Course) (domain.Course, error)
	AddCourseIssues(ctx context.Context, courseID string, issues ...string) (int, error)
	DeleteCourse(ctx context.Context, id string) error

	People() []domain.Person
	PersonByID(id string) (domain.Person, error)
	AddPerson(ctx context.Context, p domain.Person) (domain.Person, error)
	UpdatePerson(ctx context.Context, p domain.Person) (domain.Person, error)
	DeletePerson(ctx context.Context, id string) error

	Logs() []domain.LogEntry
	LogByID(id string) (domain.LogEntry, error)
	AddLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error)
	UpdateLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error

	Todos() []domain.Todo
	TodoByID(id string) (domain.Todo, error)
	AddTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// RecordHandler serves the course, person, log and todo collections.
type RecordHandler struct {
	state   stateStore
	log     *slog.Logger
	courses *resource[domain.Course]
	people  *resource[domain.Person]
	logs    *resource[domain.LogEntry]
	todos   *resource[domain.Todo]
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(state stateStore, logger *slog.Logger) *RecordHandler {
	log := logger.With("handler", "records")
	return &RecordHandler{
		state: state,
		log:   log,
		courses: &resource[domain.Course]{
			name: "course", log: log,
			list: state.Courses, get: state.CourseByID,
			create: state.AddCourse, update: state.UpdateCourse, remove: state.DeleteCourse,
			setID: func(c *domain.Course, id string) { c.ID = id },
		},
		people: &resource[domain.Person]{
			name: "person", log: log,
			list: state.People, get: state.PersonByID,
			create: state.AddPerson, update: state.UpdatePerson, remove: state.DeletePerson,
			setID: func(p *domain.Person, id string) { p.ID = id },
		},
		logs: &resource[domain.LogEntry]{
			name: "log", log: log,
			list: state.Logs, get: state.LogByID,
			create: state.AddLog, update: state.UpdateLog, remove: state.DeleteLog,
			setID:  func(l *domain.LogEntry, id string) { l.ID = id },
			filter: filterLogs,
		},
		todos: &resource[domain.Todo]{
			name: "todo", log: log,
			list: state.Todos, get: state.TodoByID,
			create: state.AddTodo, update: state.UpdateTodo, remove: state.DeleteTodo,
			setID:  func(t *domain.Todo, id string) { t.ID = id },
			filter: filterTodos,
		},
	}
}

// CourseRoutes mounts /courses.
func (h *RecordHandler) CourseRoutes(r chi.Router) {
	r.Get("/match", h.MatchCourse)
	r.Post("/{id}/issues", h.AddCourseIssues)
	h.courses.routes(r)
}

// PersonRoutes mounts /people.
func (h *RecordHandler) PersonRoutes(r chi.Router) { h.people.routes(r) }

// LogRoutes mounts /logs.
func (h *RecordHandler) LogRoutes(r chi.Router) { h.logs.routes(r) }

// TodoRoutes mounts /todos.
func (h *RecordHandler) TodoRoutes(r chi.Router) { h.todos.routes(r) }

// MatchCourse resolves a free-form course name to a known course.
// GET /courses/match?name=...
func (h *RecordHandler) MatchCourse(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		handleError(h.log, w, r, domain.NewValidationError("name", "required"))
		return
	}

	course, ok := h.state.FindCourseByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "no matching course")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

type addIssuesRequest struct {
	Issues []string `json:"issues"`
}

type addIssuesResponse struct {
	Added  int           `json:"added"`
	Course domain.Course `json:"course"`
}

// AddCourseIssues appends issues the course does not list yet.
// POST /courses/{id}/issues
func (h *RecordHandler) AddCourseIssues(w http.ResponseWriter, r *http.Request) {
	var req addIssuesRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	added, err := h.state.AddCourseIssues(r.Context(), id, req.Issues...)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	course, err := h.state.CourseByID(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addIssuesResponse{Added: added, Course: course})
}

// filterLogs supports courseId, department, from and to (inclusive dates).
func filterLogs(r *http.Request, logs []domain.LogEntry) []domain.LogEntry {
	q := r.URL.Query()
	courseID := q.Get("courseId")
	dept := q.Get("department")
	from, to := q.Get("from"), q.Get("to")
	if courseID == "" && dept == "" && from == "" && to == "" {
		return logs
	}

	out := logs[:0:0]
	for _, l := range logs {
		switch {
		case courseID != "" && l.CourseID != courseID:
		case dept != "" && !strings.EqualFold(string(l.Department), dept):
		case from != "" && l.Date < from:
		case to != "" && l.Date > to:
		default:
			out = append(out, l)
		}
	}
	return out
}

// filterTodos supports done=true|false and courseId.
func filterTodos(r *http.Request, todos []domain.Todo) []domain.Todo {
	q := r.URL.Query()
	done := q.Get("done")
	courseID := q.Get("courseId")
	if done == "" && courseID == "" {
		return todos
	}

	out := todos[:0:0]
	for _, t := range todos {
		switch {
		case done == "true" && !t.Done:
		case done == "false" && t.Done:
		case courseID != "" && t.CourseID != courseID:
		default:
			out = append(out, t)
		}
	}
	return out
}
