package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
	httpauth "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
)

const defaultRecentLimit = 5

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/recent", h.listRecent)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	Date        time.Time  `json:"date"`
	Item        string     `json:"item"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Amount      int64      `json:"amount"`
	AccountType string     `json:"account_type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), httpauth.UserID(r.Context()), expense.CreateParams{
		Date:        req.Date,
		Item:        req.Item,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		AccountType: req.AccountType,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

// list returns one calendar month of expenses. The month query param is
// YYYY-MM; it defaults to the current month.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	year, month := time.Now().UTC().Year(), time.Now().UTC().Month()

	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			http.Error(w, "month must be formatted YYYY-MM", http.StatusBadRequest)
			return
		}

		year, month = t.Year(), t.Month()
	}

	expenses, err := h.svc.ListMonth(r.Context(), httpauth.UserID(r.Context()), year, month)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) listRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	expenses, err := h.svc.ListRecent(r.Context(), httpauth.UserID(r.Context()), limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), httpauth.UserID(r.Context()), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type updateExpenseRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	Item          *string    `json:"item,omitempty"`
	Description   *string    `json:"description,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	ClearCategory bool       `json:"clear_category,omitempty"`
	Amount        *int64     `json:"amount,omitempty"`
	AccountType   *string    `json:"account_type,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Update(r.Context(), httpauth.UserID(r.Context()), id, expense.UpdateParams{
		Date:        req.Date,
		Item:        req.Item,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ClearCat:    req.ClearCategory,
		Amount:      req.Amount,
		AccountType: req.AccountType,
	})
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), httpauth.UserID(r.Context()), id); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
