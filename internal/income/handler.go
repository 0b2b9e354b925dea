package income

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	apphttp "github.com/sachin-027/Personal-Expense-Tracker/internal/http"
	"github.com/sachin-027/Personal-Expense-Tracker/internal/ownership"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) CreateIncome(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Source = strings.TrimSpace(req.Source)
	if req.Source == "" {
		return fiber.NewError(fiber.StatusBadRequest, "source required")
	}
	if req.Amount == nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount required")
	}
	if *req.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be zero or greater")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	inc := &Income{
		UserID: userID,
		Source: req.Source,
		Amount: *req.Amount,
		Date:   date,
		Icon:   req.Icon,
	}

	created, err := h.Store.Insert(userContext(c), inc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add income: "+err.Error())
	}

	return apphttp.Created(c, created)
}

func (h *Handler) ListIncomes(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))
	if fromStr != "" || toStr != "" {
		from, to, err := parseRange(fromStr, toStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from/to must be YYYY-MM-DD")
		}
		incomes, err := h.Store.ListByUserInRange(ctx, userID, from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch incomes")
		}
		return apphttp.OKCount(c, incomes, len(incomes))
	}

	incomes, err := h.Store.ListByUser(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch incomes")
	}

	return apphttp.OKCount(c, incomes, len(incomes))
}

func (h *Handler) DeleteIncome(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := c.Params("id")
	ctx := userContext(c)

	inc, err := h.Store.FindByID(ctx, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch income")
	}

	owner := ""
	if inc != nil {
		owner = inc.UserID
	}
	if err := ownership.Authorize(inc != nil, owner, userID); err != nil {
		return err
	}

	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return err
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete income")
	}

	return apphttp.OK(c, fiber.Map{})
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UTC(), nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
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
