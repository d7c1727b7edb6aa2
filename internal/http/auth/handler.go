package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers the unauthenticated endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signUp)
	r.Post("/login", h.logIn)
}

// MeRoutes registers the endpoints that require a session.
func (h *Handler) MeRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.svc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, sessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, sessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context(), UserID(r.Context()))
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
