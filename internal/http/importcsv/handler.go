// Package importcsv exposes statement upload. The file arrives as
// multipart form data together with the account type to book against.
package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpauth "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
	"github.com/kogulmurugaiah/expensetrack/internal/importer"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/expenses", h.importStatement)
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountType := r.FormValue("account_type")
	if accountType == "" {
		http.Error(w, "account_type field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.svc.Import(r.Context(), httpauth.UserID(r.Context()), file, accountType)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, result)
}
