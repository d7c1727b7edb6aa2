package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpauth "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/respond"
	"github.com/kogulmurugaiah/expensetrack/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/yearly", h.yearly)
}

type categoryTotalResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Total        int64     `json:"total"`
	Percentage   string    `json:"percentage"`
}

type accountTotalResponse struct {
	AccountType string `json:"account_type"`
	Total       int64  `json:"total"`
	Percentage  string `json:"percentage"`
}

type dayTotalResponse struct {
	Day   int   `json:"day"`
	Total int64 `json:"total"`
}

type monthTotalResponse struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type monthlyReportResponse struct {
	Year           int                     `json:"year"`
	Month          int                     `json:"month"`
	GrandTotal     int64                   `json:"grand_total"`
	CategoryTotals []categoryTotalResponse `json:"category_totals"`
	AccountTotals  []accountTotalResponse  `json:"account_totals"`
	DailySeries    []dayTotalResponse      `json:"daily_series"`
}

type yearlyReportResponse struct {
	Year           int                     `json:"year"`
	GrandTotal     int64                   `json:"grand_total"`
	CategoryTotals []categoryTotalResponse `json:"category_totals"`
	AccountTotals  []accountTotalResponse  `json:"account_totals"`
	MonthlySeries  []monthTotalResponse    `json:"monthly_series"`
}

// monthly serves the dashboard for one calendar month. The month query
// param is YYYY-MM, defaulting to the current month.
func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			http.Error(w, "month must be formatted YYYY-MM", http.StatusBadRequest)
			return
		}

		year, month = t.Year(), t.Month()
	}

	rep, err := h.svc.Monthly(r.Context(), httpauth.UserID(r.Context()), year, month)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := monthlyReportResponse{
		Year:           rep.Year,
		Month:          int(rep.Month),
		GrandTotal:     rep.GrandTotal,
		CategoryTotals: toCategoryTotals(rep.CategoryTotals),
		AccountTotals:  toAccountTotals(rep.AccountTotals),
		DailySeries:    make([]dayTotalResponse, len(rep.DailySeries)),
	}

	for i, dt := range rep.DailySeries {
		resp.DailySeries[i] = dayTotalResponse{Day: dt.Day, Total: dt.Total}
	}

	respond.JSON(w, http.StatusOK, resp)
}

// yearly serves the dashboard for one calendar year. The year query
// param defaults to the current year.
func (h *Handler) yearly(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()

	if s := r.URL.Query().Get("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "year must be a number", http.StatusBadRequest)
			return
		}

		year = n
	}

	rep, err := h.svc.Yearly(r.Context(), httpauth.UserID(r.Context()), year)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := yearlyReportResponse{
		Year:           rep.Year,
		GrandTotal:     rep.GrandTotal,
		CategoryTotals: toCategoryTotals(rep.CategoryTotals),
		AccountTotals:  toAccountTotals(rep.AccountTotals),
		MonthlySeries:  make([]monthTotalResponse, len(rep.MonthlySeries)),
	}

	for i, mt := range rep.MonthlySeries {
		resp.MonthlySeries[i] = monthTotalResponse{
			Month: int(mt.Month),
			Name:  mt.MonthName,
			Total: mt.Total,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func toCategoryTotals(totals []report.CategoryTotal) []categoryTotalResponse {
	resp := make([]categoryTotalResponse, len(totals))
	for i, ct := range totals {
		resp[i] = categoryTotalResponse{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Total:        ct.Total,
			Percentage:   ct.Percentage,
		}
	}

	return resp
}

func toAccountTotals(totals []report.AccountTotal) []accountTotalResponse {
	resp := make([]accountTotalResponse, len(totals))
	for i, at := range totals {
		resp[i] = accountTotalResponse{
			AccountType: at.AccountType,
			Total:       at.Total,
			Percentage:  at.Percentage,
		}
	}

	return resp
}
