// Package refdata serves the reference tables backing the entry form
// selects: categories, account types and income sources.
package refdata

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	"github.com/kogulmurugaiah/expensetrack/internal/category"
	httpauth "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
)

type Handler struct {
	categories   *category.Service
	accountTypes *accounttype.Service
	sources      *incomesource.Service
}

func NewHandler(categories *category.Service, accountTypes *accounttype.Service, sources *incomesource.Service) *Handler {
	return &Handler{
		categories:   categories,
		accountTypes: accountTypes,
		sources:      sources,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/categories", h.listCategories)
	r.Post("/categories", h.addCategory)
	r.Get("/account-types", h.listAccountTypes)
	r.Post("/account-types", h.addAccountType)
	r.Get("/income-sources", h.listSources)
	r.Post("/income-sources", h.addSource)
}

type namedResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type addNameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]namedResponse, len(categories))
	for i, c := range categories {
		resp[i] = namedResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	var req addNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.categories.Add(r.Context(), req.Name)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, namedResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
}

type accountTypesResponse struct {
	AccountTypes []string `json:"account_types"`
}

func (h *Handler) listAccountTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.accountTypes.List(r.Context(), httpauth.UserID(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, accountTypesResponse{AccountTypes: types})
}

func (h *Handler) addAccountType(w http.ResponseWriter, r *http.Request) {
	var req addNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, err := h.accountTypes.Add(r.Context(), httpauth.UserID(r.Context()), req.Name)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (h *Handler) listSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.sources.List(r.Context(), httpauth.UserID(r.Context()))
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]namedResponse, len(sources))
	for i, src := range sources {
		resp[i] = namedResponse{ID: src.ID, Name: src.Name, CreatedAt: src.CreatedAt}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) addSource(w http.ResponseWriter, r *http.Request) {
	var req addNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	src, err := h.sources.Add(r.Context(), httpauth.UserID(r.Context()), req.Name)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, namedResponse{ID: src.ID, Name: src.Name, CreatedAt: src.CreatedAt})
}
