package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// resource serves list/get/create/update/delete for one state collection.
// Writes go through the state store, which persists before the response is
// written and rolls back on failure.
type resource[T any] struct {
	name   string
	log    *slog.Logger
	list   func() []T
	get    func(id string) (T, error)
	create func(ctx context.Context, item T) (T, error)
	update func(ctx context.Context, item T) (T, error)
	remove func(ctx context.Context, id string) error
	setID  func(item *T, id string)

	// filter narrows List by query parameters. Optional.
	filter func(r *http.Request, items []T) []T
}

func (rs *resource[T]) routes(r chi.Router) {
	r.Get("/", rs.List)
	r.Post("/", rs.Create)
	r.Get("/{id}", rs.Get)
	r.Put("/{id}", rs.Update)
	r.Delete("/{id}", rs.Delete)
}

func (rs *resource[T]) List(w http.ResponseWriter, r *http.Request) {
	items := rs.list()
	if rs.filter != nil {
		items = rs.filter(r, items)
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (rs *resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := rs.get(chi.URLParam(r, "id"))
	if err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (rs *resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := decodeJSON(w, r, maxJSONBody, &item); err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	rs.setID(&item, "")

	created, err := rs.create(r.Context(), item)
	if err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces the item at {id}; an id in the body is ignored.
func (rs *resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := decodeJSON(w, r, maxJSONBody, &item); err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	rs.setID(&item, chi.URLParam(r, "id"))

	updated, err := rs.update(r.Context(), item)
	if err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (rs *resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rs.remove(r.Context(), id); err != nil {
		handleError(rs.log, w, r, err)
		return
	}
	rs.log.InfoContext(r.Context(), rs.name+" deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
