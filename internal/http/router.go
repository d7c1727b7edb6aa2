package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domainauth "github.com/kogulmurugaiah/expensetrack/internal/auth"
	authhttp "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	"github.com/kogulmurugaiah/expensetrack/internal/http/expense"
	"github.com/kogulmurugaiah/expensetrack/internal/http/importcsv"
	"github.com/kogulmurugaiah/expensetrack/internal/http/income"
	"github.com/kogulmurugaiah/expensetrack/internal/http/refdata"
	"github.com/kogulmurugaiah/expensetrack/internal/http/report"
)

func New(
	authSvc *domainauth.Service,
	authV1 *authhttp.Handler,
	expensesV1 *expense.Handler,
	incomeV1 *income.Handler,
	refdataV1 *refdata.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				authV1.Routes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(authhttp.Middleware(authSvc))
				authV1.MeRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authhttp.Middleware(authSvc))

			r.Route("/expenses", func(r chi.Router) {
				expensesV1.Routes(r)
			})

			r.Route("/income", func(r chi.Router) {
				incomeV1.Routes(r)
			})

			r.Route("/refdata", refdataV1.Routes)

			r.Route("/reports", reportsV1.Routes)

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
