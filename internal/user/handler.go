package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/hazelsoft/userdir/internal/pkg/message"
	"github.com/hazelsoft/userdir/internal/pkg/web"
)

// Service is the directory capability the handler depends on.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (User, error)
	Create(ctx context.Context, params CreateParams) (User, error)
	Update(ctx context.Context, userID int64, params UpdateParams) (User, error)
	Delete(ctx context.Context, userID int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListResponse is the payload of a successful list call.
type ListResponse struct {
	Users []User `json:"users"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		response.ServerError(w, err)
		return
	}

	payload := &ListResponse{Users: users}
	web.OK(w, http.StatusOK, nil, payload)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		web.Fail(w, http.StatusNotFound, err, []string{message.UserNotFound})
		return
	}

	u, err := h.svc.Find(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &u)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, []string{message.InvalidInput})
		return
	}

	params := CreateParams{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	u, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("user created", "id", u.ID)
	msg := message.UserCreated
	web.OK(w, http.StatusCreated, &msg, &u)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		web.Fail(w, http.StatusNotFound, err, []string{message.UserNotFound})
		return
	}

	req, err := web.ParamsFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, []string{message.InvalidInput})
		return
	}

	params := UpdateParams{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	u, err := h.svc.Update(r.Context(), userID, params)
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("user updated", "id", u.ID)
	msg := message.UserUpdated
	web.OK(w, http.StatusOK, &msg, &u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		web.Fail(w, http.StatusNotFound, err, []string{message.UserNotFound})
		return
	}

	if err := h.svc.Delete(r.Context(), userID); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("user deleted", "id", userID)
	msg := message.UserDeleted
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// respondError maps a service error to its transport status: validation
// failures are 400, uniqueness conflicts 409, missing records 404 and
// anything else a server error.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case IsValidationError(err):
		web.Fail(w, http.StatusBadRequest, err, []string{err.Error()})
	case IsConflictError(err):
		web.Fail(w, http.StatusConflict, err, []string{err.Error()})
	case errors.Is(err, ErrNotFound):
		web.Fail(w, http.StatusNotFound, err, []string{message.UserNotFound})
	default:
		response.ServerError(w, err)
	}
}
