package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/dashboard"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	handlers "github.com/sachin-027/Personal-Expense-Tracker/internal/http"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/reports"
)

type Router struct {
	AuthHandler      *handlers.AuthHandler
	IncomeHandler    *income.Handler
	ExpenseHandler   *expense.Handler
	DashboardHandler *dashboard.Handler
	ReportsHandler   *reports.Handler
	AuthMW           fiber.Handler
	AuthRateMW       fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	signup := r.AuthHandler.Signup
	login := r.AuthHandler.Login
	if r.AuthRateMW != nil {
		app.Post("/api/auth/signup", r.AuthRateMW, signup)
		app.Post("/api/auth/login", r.AuthRateMW, login)
	} else {
		app.Post("/api/auth/signup", signup)
		app.Post("/api/auth/login", login)
	}
	app.Get("/api/auth/me", r.AuthMW, r.AuthHandler.Me)
	app.Put("/api/auth/profile-image", r.AuthMW, r.AuthHandler.UpdateProfileImage)

	app.Post("/api/income", r.AuthMW, r.IncomeHandler.CreateIncome)
	app.Get("/api/income", r.AuthMW, r.IncomeHandler.ListIncomes)
	app.Get("/api/income/download", r.AuthMW, r.ReportsHandler.DownloadIncome)
	app.Delete("/api/income/:id", r.AuthMW, r.IncomeHandler.DeleteIncome)

	app.Post("/api/expense", r.AuthMW, r.ExpenseHandler.CreateExpense)
	app.Get("/api/expense", r.AuthMW, r.ExpenseHandler.ListExpenses)
	app.Get("/api/expense/download", r.AuthMW, r.ReportsHandler.DownloadExpense)
	app.Delete("/api/expense/:id", r.AuthMW, r.ExpenseHandler.DeleteExpense)

	app.Get("/api/dashboard", r.AuthMW, r.DashboardHandler.GetDashboard)
	app.Get("/api/dashboard/download", r.AuthMW, r.ReportsHandler.DownloadDashboard)
}
