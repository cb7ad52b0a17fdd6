package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/session"
)

type stubAuth map[string]session.Session

func (s stubAuth) Authenticate(_ context.Context, token string) (session.Session, error) {
	if sess, ok := s[token]; ok {
		return sess, nil
	}
	return session.Session{}, session.ErrNotFound
}

func TestRequireAuthAndRole(t *testing.T) {
	veteran := uuid.New()
	auth := stubAuth{"vet-token": {UserID: veteran, Role: model.RoleVeteran}}

	app := fiber.New()
	app.Get("/me", RequireAuth(auth), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUserID(c).String())
	})
	app.Get("/employers", RequireAuth(auth), RequireRole(model.RoleEmployer), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/me", "", fiber.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic vet-token", fiber.StatusUnauthorized},
		{"unknown token", "/me", "Bearer nope", fiber.StatusUnauthorized},
		{"valid", "/me", "Bearer vet-token", fiber.StatusOK},
		{"lower-case scheme", "/me", "bearer vet-token", fiber.StatusOK},
		{"wrong role", "/employers", "Bearer vet-token", fiber.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", c.path, nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != c.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, c.want)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimiter(2, 0), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		last = resp.StatusCode
	}
	if last != fiber.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last)
	}
}
