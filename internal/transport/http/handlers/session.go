package http_handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/domain"
	"github.com/baechuer/grandveggie/internal/logger"
	"github.com/baechuer/grandveggie/internal/transport/http/dto"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

// SessionStore is the session surface the handlers drive.
type SessionStore interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, patch domain.UserPatch)
	Snapshot() domain.Session
}

type SessionHandler struct {
	store SessionStore
}

func NewSessionHandler(store SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	err := h.store.Login(r.Context(), req.Email, req.Password)
	middleware.LoginAttemptsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		logger.WithCtx(r.Context()).Info().Str("code", outcome(err)).Msg("login_failed")
	}
	response.WriteResult(w, http.StatusOK, err)
}

// Register handles POST /auth/register.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	err := h.store.Register(r.Context(), req.Name, req.Email, req.Password)
	middleware.RegistrationsTotal.WithLabelValues(outcome(err)).Inc()
	response.WriteResult(w, http.StatusCreated, err)
}

// Logout handles POST /auth/logout. Signing out twice is fine.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	response.NoContent(w)
}

// Session handles GET /auth/session.
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.store.Snapshot())
}

// UpdateMe handles PATCH /auth/me.
func (h *SessionHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	if !h.store.Snapshot().IsAuthenticated {
		response.WriteError(w, r, domain.ErrNotAuthenticated())
		return
	}

	var req dto.UpdateMeRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.store.UpdateUser(r.Context(), req.Patch())
	response.OK(w, h.store.Snapshot())
}

// Access handles GET /auth/access?role=.
func (h *SessionHandler) Access(w http.ResponseWriter, r *http.Request) {
	q := dto.AccessQuery{Role: r.URL.Query().Get("role")}
	if err := q.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	ok := session.HasAccess(h.store.Snapshot(), domain.Role(q.Role))
	response.OK(w, dto.AccessView{HasAccess: ok})
}

// outcome is the metrics label for a session operation result.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "internal_error"
}
