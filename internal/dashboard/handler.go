package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/expense"
	apphttp "github.com/sachin-027/Personal-Expense-Tracker/internal/http"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/income"
)

type Handler struct {
	Incomes  income.Store
	Expenses expense.Store
}

func NewHandler(incomes income.Store, expenses expense.Store) *Handler {
	return &Handler{Incomes: incomes, Expenses: expenses}
}

// GetDashboard fetches the caller's full income and expense lists and
// reduces them to a Snapshot. The two queries run without a transaction;
// a write landing between them can show up in only one of the lists.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
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

	return apphttp.OK(c, Build(incomes, expenses, time.Now().UTC()))
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
