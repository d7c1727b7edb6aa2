package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	accounttypeStore "github.com/kogulmurugaiah/expensetrack/internal/accounttype/store"
	"github.com/kogulmurugaiah/expensetrack/internal/auth"
	authStore "github.com/kogulmurugaiah/expensetrack/internal/auth/store"
	"github.com/kogulmurugaiah/expensetrack/internal/category"
	categoryStore "github.com/kogulmurugaiah/expensetrack/internal/category/store"
	"github.com/kogulmurugaiah/expensetrack/internal/config"
	"github.com/kogulmurugaiah/expensetrack/internal/database"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
	expenseStore "github.com/kogulmurugaiah/expensetrack/internal/expense/store"
	appHttp "github.com/kogulmurugaiah/expensetrack/internal/http"
	authHandler "github.com/kogulmurugaiah/expensetrack/internal/http/auth"
	expenseHandler "github.com/kogulmurugaiah/expensetrack/internal/http/expense"
	importHandler "github.com/kogulmurugaiah/expensetrack/internal/http/importcsv"
	incomeHandler "github.com/kogulmurugaiah/expensetrack/internal/http/income"
	refdataHandler "github.com/kogulmurugaiah/expensetrack/internal/http/refdata"
	reportHandler "github.com/kogulmurugaiah/expensetrack/internal/http/report"
	"github.com/kogulmurugaiah/expensetrack/internal/importer"
	"github.com/kogulmurugaiah/expensetrack/internal/income"
	incomeStore "github.com/kogulmurugaiah/expensetrack/internal/income/store"
	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
	incomesourceStore "github.com/kogulmurugaiah/expensetrack/internal/incomesource/store"
	"github.com/kogulmurugaiah/expensetrack/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		authService         = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		expenseService      = expense.NewService(expenseStore.New(db))
		incomeService       = income.NewService(incomeStore.New(db))
		categoryService     = category.NewService(categoryStore.New(db))
		accountTypeService  = accounttype.NewService(accounttypeStore.New(db))
		incomeSourceService = incomesource.NewService(incomesourceStore.New(db))
		reportService       = report.NewService(expenseService, accountTypeService)
		importService       = importer.NewService(categoryService, expenseService)
	)

	var (
		authH    = authHandler.NewHandler(authService)
		expenseH = expenseHandler.NewHandler(expenseService)
		incomeH  = incomeHandler.NewHandler(incomeService)
		refdataH = refdataHandler.NewHandler(categoryService, accountTypeService, incomeSourceService)
		reportH  = reportHandler.NewHandler(reportService)
		importH  = importHandler.NewHandler(importService)
	)

	router := appHttp.New(authService, authH, expenseH, incomeH, refdataH, reportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
