package income

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpauth "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
	"github.com/kogulmurugaiah/expensetrack/internal/income"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type incomeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Date        time.Time  `json:"date"`
	Amount      int64      `json:"amount"`
	SourceID    uuid.UUID  `json:"source_id"`
	SourceName  string     `json:"source_name"`
	AccountType string     `json:"account_type"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toResponse(in *income.Income) incomeResponse {
	return incomeResponse{
		ID:          in.ID,
		Date:        in.Date,
		Amount:      in.Amount,
		SourceID:    in.SourceID,
		SourceName:  in.SourceName,
		AccountType: in.AccountType,
		Description: in.Description,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func toResponseList(records []*income.Income) []incomeResponse {
	resp := make([]incomeResponse, len(records))
	for i, in := range records {
		resp[i] = toResponse(in)
	}

	return resp
}

type createIncomeRequest struct {
	Date        time.Time `json:"date"`
	Amount      int64     `json:"amount"`
	SourceID    uuid.UUID `json:"source_id"`
	AccountType string    `json:"account_type"`
	Description string    `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := h.svc.Create(r.Context(), httpauth.UserID(r.Context()), income.CreateParams{
		Date:        req.Date,
		Amount:      req.Amount,
		SourceID:    req.SourceID,
		AccountType: req.AccountType,
		Description: req.Description,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(in))
}

// list returns one calendar month of income. The month query param is
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

	records, err := h.svc.ListMonth(r.Context(), httpauth.UserID(r.Context()), year, month)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(records))
}

type updateIncomeRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Amount      *int64     `json:"amount,omitempty"`
	SourceID    *uuid.UUID `json:"source_id,omitempty"`
	AccountType *string    `json:"account_type,omitempty"`
	Description *string    `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := h.svc.Update(r.Context(), httpauth.UserID(r.Context()), id, income.UpdateParams{
		Date:        req.Date,
		Amount:      req.Amount,
		SourceID:    req.SourceID,
		AccountType: req.AccountType,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "income record not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(in))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), httpauth.UserID(r.Context()), id); err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "income record not found", http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
