package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/auth"
)

type AuthHandler struct {
	DB     *pgxpool.Pool
	Tokens *auth.TokenIssuer
}

type User struct {
	ID              string    `db:"id" json:"id"`
	FullName        string    `db:"full_name" json:"full_name"`
	Email           string    `db:"email" json:"email"`
	ProfileImageURL string    `db:"profile_image_url" json:"profile_image_url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type signupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.FullName = strings.TrimSpace(body.FullName)
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	ctx := userContext(c)

	var user User
	err = h.DB.QueryRow(
		ctx,
		`INSERT INTO users (full_name, email, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, full_name, email, profile_image_url, created_at`,
		body.FullName, body.Email, string(hashed),
	).Scan(&user.ID, &user.FullName, &user.Email, &user.ProfileImageURL, &user.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create user")
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return Created(c, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))

	var (
		user         User
		passwordHash string
	)

	ctx := userContext(c)
	err := h.DB.QueryRow(
		ctx,
		`SELECT id, full_name, email, profile_image_url, created_at, password_hash
         FROM users WHERE email = $1`,
		body.Email,
	).Scan(&user.ID, &user.FullName, &user.Email, &user.ProfileImageURL, &user.CreatedAt, &passwordHash)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return OK(c, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.findUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return OK(c, user)
}

type profileImageRequest struct {
	ProfileImageURL string `json:"profile_image_url"`
}

func (h *AuthHandler) UpdateProfileImage(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body profileImageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.ProfileImageURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "profile_image_url required")
	}

	ctx := userContext(c)
	_, err = h.DB.Exec(
		ctx,
		`UPDATE users SET profile_image_url = $1 WHERE id = $2`,
		body.ProfileImageURL, userID,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update profile image")
	}

	user, err := h.findUser(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return OK(c, user)
}

func (h *AuthHandler) findUser(ctx context.Context, id string) (User, error) {
	var user User
	err := h.DB.QueryRow(
		ctx,
		`SELECT id, full_name, email, profile_image_url, created_at
         FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.FullName, &user.Email, &user.ProfileImageURL, &user.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func extractUserID(c *fiber.Ctx) (string, error) {
	val := c.Locals("user_id")
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "user id missing")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
