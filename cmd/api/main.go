package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/auth"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/config"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/dashboard"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	apphttp "github.com/sachin-027/Personal-Expense-Tracker/internal/http"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
	applog "github.com/sachin-027/Personal-Expense-Tracker/internal/log"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/reports"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/router"
)

func main() {
	logger := applog.New(applog.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("error creating pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		logger.Error("error pinging database", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.ErrorHandler,
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(applog.RequestLogger(logger))

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	incomeRepo := income.NewRepository(pool)
	expenseRepo := expense.NewRepository(pool)

	r := &router.Router{
		AuthHandler:      &apphttp.AuthHandler{DB: pool, Tokens: tokens},
		IncomeHandler:    income.NewHandler(incomeRepo),
		ExpenseHandler:   expense.NewHandler(expenseRepo),
		DashboardHandler: dashboard.NewHandler(incomeRepo, expenseRepo),
		ReportsHandler:   reports.NewHandler(incomeRepo, expenseRepo),
		AuthMW:           tokens.Middleware(pool),
		AuthRateMW: limiter.New(limiter.Config{
			Max:        cfg.AuthRateMax,
			Expiration: cfg.AuthRateWindow,
		}),
	}
	r.RegisterRoutes(app)

	logger.Info("listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
