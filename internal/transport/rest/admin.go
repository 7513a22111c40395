package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/pkg/ctxutil"
)

type userAdminService interface {
	Users() []domain.UserProfile
	ApproveUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error)
	RejectUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error)
	ReinstateUser(ctx context.Context, actorID, userID string) (domain.UserProfile, error)
	ChangeUserRole(ctx context.Context, actorID, userID string, role domain.UserRole) (domain.UserProfile, error)
}

// AdminHandler serves user approval endpoints. Routes are mounted behind
// middleware.RequireAdmin; the service checks the actor again.
type AdminHandler struct {
	svc userAdminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc userAdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// ListUsers returns every profile, optionally filtered by status.
// GET /admin/users?status=PENDING
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	users := h.svc.Users()
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		if status != "" && !strings.EqualFold(string(u.Status), status) {
			continue
		}
		out = append(out, toUserResponse(u))
	}

	writeJSON(w, http.StatusOK, out)
}

// Approve handles POST /admin/users/{id}/approve.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "approve", h.svc.ApproveUser)
}

// Reject handles POST /admin/users/{id}/reject.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reject", h.svc.RejectUser)
}

// Reinstate handles POST /admin/users/{id}/reinstate.
func (h *AdminHandler) Reinstate(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reinstate", h.svc.ReinstateUser)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole handles PUT /admin/users/{id}/role.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	actorID, _ := ctxutil.UserIDFromCtx(r.Context())
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))

	user, err := h.svc.ChangeUserRole(r.Context(), actorID, chi.URLParam(r, "id"), role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "user role changed",
		slog.String("actor_id", actorID),
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AdminHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, actorID, userID string) (domain.UserProfile, error),
) {
	actorID, _ := ctxutil.UserIDFromCtx(r.Context())

	user, err := fn(r.Context(), actorID, chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "user "+action,
		slog.String("actor_id", actorID),
		slog.String("user_id", user.ID),
		slog.String("status", string(user.Status)),
	)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
