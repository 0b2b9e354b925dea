package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/dashboard"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
)

type Handler struct {
	Incomes  income.Store
	Expenses expense.Store
}

func NewHandler(incomes income.Store, expenses expense.Store) *Handler {
	return &Handler{Incomes: incomes, Expenses: expenses}
}

// DownloadIncome streams the caller's income records as income-report.xlsx,
// newest first.
func (h *Handler) DownloadIncome(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Incomes.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch incomes")
	}

	data, err := IncomeWorkbook(items)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	c.Set("Content-Type", MIMEXLSX)
	c.Set("Content-Disposition", "attachment; filename=income-report.xlsx")
	return c.Status(fiber.StatusOK).Send(data)
}

// DownloadExpense streams the caller's expenses as expense-report.xlsx.
func (h *Handler) DownloadExpense(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Expenses.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expenses")
	}

	data, err := ExpenseWorkbook(items)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	c.Set("Content-Type", MIMEXLSX)
	c.Set("Content-Disposition", "attachment; filename=expense-report.xlsx")
	return c.Status(fiber.StatusOK).Send(data)
}

// DownloadDashboard streams the current dashboard snapshot as a PDF.
func (h *Handler) DownloadDashboard(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	incomes, err := h.Incomes.ListByUser(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch incomes")
	}
	expenses, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expenses")
	}

	data, err := SnapshotPDF(dashboard.Build(incomes, expenses, time.Now().UTC()))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	c.Set("Content-Type", MIMEPDF)
	c.Set("Content-Disposition", "attachment; filename=dashboard-report.pdf")
	return c.Status(fiber.StatusOK).Send(data)
}

func extractUserID(c *fiber.Ctx) (string, error) {
	val := c.Locals("user_id")
	if val == nil {
		return "", errors.New("user id missing")
	}
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", errors.New("user id missing")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
